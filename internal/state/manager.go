// Package state owns the in-memory gamification snapshot shared by the
// economy, gacha and pet services. The snapshot is authoritative for the
// session; persistence is fire-and-forget.
package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
)

// Manager guards the single gamification snapshot. All engine mutations go
// through Update so every change is persisted exactly once.
type Manager struct {
	mu       sync.Mutex
	store    repository.Store
	snapshot *domain.GamificationState
}

// NewManager loads the persisted snapshot, seeding a fresh one if none exists.
func NewManager(ctx context.Context, store repository.Store) (*Manager, error) {
	snapshot := domain.NewGamificationState()
	found, err := store.Load(ctx, repository.KindGamification, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to load gamification state: %w", err)
	}
	if !found {
		snapshot = domain.NewGamificationState()
	}
	if snapshot.Food == nil {
		snapshot.Food = domain.FoodInventory{}
	}
	return &Manager{store: store, snapshot: snapshot}, nil
}

// View runs f against the current snapshot without persisting. f must not
// retain or mutate the snapshot.
func (m *Manager) View(f func(s *domain.GamificationState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(m.snapshot)
}

// Update runs f against the snapshot and, if f succeeds, saves the result.
// A save failure is surfaced as a warning only: the in-memory snapshot stays
// authoritative for the rest of the session.
func (m *Manager) Update(ctx context.Context, f func(s *domain.GamificationState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := f(m.snapshot); err != nil {
		return err
	}

	if err := m.store.Save(ctx, repository.KindGamification, m.snapshot); err != nil {
		logger.FromContext(ctx).Warn("Failed to persist gamification state, continuing with in-memory snapshot", "error", err)
	}
	return nil
}
