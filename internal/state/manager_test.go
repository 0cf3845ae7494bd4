package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
)

func TestNewManager(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds a fresh snapshot when the store is empty", func(t *testing.T) {
		m, err := NewManager(ctx, repository.NewMemoryStore())
		require.NoError(t, err)

		m.View(func(s *domain.GamificationState) {
			assert.Equal(t, 0, s.Economy.XP)
			assert.Equal(t, 1, s.Economy.Level)
			assert.NotNil(t, s.Food)
		})
	})

	t.Run("loads an existing snapshot", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seeded := domain.NewGamificationState()
		seeded.Economy.XP = 750
		seeded.Economy.Coins = 300
		require.NoError(t, store.Save(ctx, repository.KindGamification, seeded))

		m, err := NewManager(ctx, store)
		require.NoError(t, err)

		m.View(func(s *domain.GamificationState) {
			assert.Equal(t, 750, s.Economy.XP)
			assert.Equal(t, 300, s.Economy.Coins)
		})
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists after a successful mutation", func(t *testing.T) {
		store := repository.NewMemoryStore()
		m, err := NewManager(ctx, store)
		require.NoError(t, err)

		require.NoError(t, m.Update(ctx, func(s *domain.GamificationState) error {
			s.Economy.Coins = 42
			return nil
		}))

		var loaded domain.GamificationState
		found, err := store.Load(ctx, repository.KindGamification, &loaded)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 42, loaded.Economy.Coins)
	})

	t.Run("surfaces mutation errors without saving", func(t *testing.T) {
		store := repository.NewMemoryStore()
		m, err := NewManager(ctx, store)
		require.NoError(t, err)

		wantErr := fmt.Errorf("rejected")
		err = m.Update(ctx, func(s *domain.GamificationState) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		var loaded domain.GamificationState
		found, err := store.Load(ctx, repository.KindGamification, &loaded)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save failures are non-fatal", func(t *testing.T) {
		store := repository.NewMemoryStore()
		store.FailSaves = true
		m, err := NewManager(ctx, store)
		require.NoError(t, err)

		require.NoError(t, m.Update(ctx, func(s *domain.GamificationState) error {
			s.Economy.Coins = 7
			return nil
		}))

		m.View(func(s *domain.GamificationState) {
			assert.Equal(t, 7, s.Economy.Coins, "in-memory snapshot stays authoritative")
		})
	})
}
