package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists snapshots as JSON files under root/<user>/<kind>.json.
// Writes go through a temp file and rename so a crash never leaves a
// half-written snapshot.
type FileStore struct {
	dir string
}

const globalScopeDir = "_global"

// NewFileStore creates the scope directory and returns a store bound to it.
func NewFileStore(root, userID string) (*FileStore, error) {
	scope := userID
	if scope == "" {
		scope = globalScopeDir
	}
	dir := filepath.Join(root, scope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(kind Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

// Load reads and unmarshals the snapshot file for kind.
func (s *FileStore) Load(_ context.Context, kind Kind, v any) (bool, error) {
	data, err := os.ReadFile(s.path(kind))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", kind, err)
	}
	return true, nil
}

// Save atomically replaces the snapshot file for kind.
func (s *FileStore) Save(_ context.Context, kind Kind, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", kind, err)
	}

	tmp := s.path(kind) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", kind, err)
	}
	if err := os.Rename(tmp, s.path(kind)); err != nil {
		return fmt.Errorf("failed to replace %s snapshot: %w", kind, err)
	}
	return nil
}

// Remove deletes the snapshot file for kind.
func (s *FileStore) Remove(_ context.Context, kind Kind) error {
	err := os.Remove(s.path(kind))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
