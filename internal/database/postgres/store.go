// Package postgres implements the snapshot store on PostgreSQL. Snapshots are
// stored whole as JSONB rows keyed by (user_id, kind).
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
)

const globalScope = "_global"

// Store persists snapshots in the app_state table, scoped to one user id.
type Store struct {
	db     *pgxpool.Pool
	userID string
}

// NewStore returns a store bound to the given user scope.
func NewStore(db *pgxpool.Pool, userID string) *Store {
	if userID == "" {
		userID = globalScope
	}
	return &Store{db: db, userID: userID}
}

// Load reads and unmarshals the snapshot row for kind.
func (s *Store) Load(ctx context.Context, kind repository.Kind, v any) (bool, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM app_state WHERE user_id = $1 AND kind = $2`,
		s.userID, string(kind),
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", kind, err)
	}
	return true, nil
}

// Save upserts the snapshot row for kind.
func (s *Store) Save(ctx context.Context, kind repository.Kind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", kind, err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO app_state (user_id, kind, data, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, kind)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		s.userID, string(kind), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	return nil
}

// Remove deletes the snapshot row for kind.
func (s *Store) Remove(ctx context.Context, kind repository.Kind) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM app_state WHERE user_id = $1 AND kind = $2`,
		s.userID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("failed to remove %s snapshot: %w", kind, err)
	}
	return nil
}
