package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and as a fallback when no
// durable backend is configured. Values round-trip through JSON so it matches
// the serialization behavior of the real stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Kind][]byte

	// FailSaves makes every Save return an error. Tests use it to verify
	// that persistence failures are non-fatal.
	FailSaves bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Kind][]byte)}
}

// Load unmarshals the stored value for kind into v.
func (s *MemoryStore) Load(_ context.Context, kind Kind, v any) (bool, error) {
	s.mu.RLock()
	data, ok := s.data[kind]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Save stores the JSON encoding of v under kind.
func (s *MemoryStore) Save(_ context.Context, kind Kind, v any) error {
	if s.FailSaves {
		return fmt.Errorf("save failure injected for %s", kind)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[kind] = data
	s.mu.Unlock()
	return nil
}

// Remove deletes the stored value for kind.
func (s *MemoryStore) Remove(_ context.Context, kind Kind) error {
	s.mu.Lock()
	delete(s.data, kind)
	s.mu.Unlock()
	return nil
}
