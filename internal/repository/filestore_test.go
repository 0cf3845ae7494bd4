package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing snapshot reports not found", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), "alice")
		require.NoError(t, err)

		var out domain.GamificationState
		found, err := store.Load(ctx, KindGamification, &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), "alice")
		require.NoError(t, err)

		in := domain.NewGamificationState()
		in.Economy.XP = 1234
		in.Economy.Coins = 87
		in.Food["kibble"] = 3
		require.NoError(t, store.Save(ctx, KindGamification, in))

		var out domain.GamificationState
		found, err := store.Load(ctx, KindGamification, &out)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, 1234, out.Economy.XP)
		assert.Equal(t, 87, out.Economy.Coins)
		assert.Equal(t, 3, out.Food["kibble"])
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), "alice")
		require.NoError(t, err)

		first := domain.NewGamificationState()
		first.Economy.Coins = 10
		require.NoError(t, store.Save(ctx, KindGamification, first))

		second := domain.NewGamificationState()
		second.Economy.Coins = 20
		require.NoError(t, store.Save(ctx, KindGamification, second))

		var out domain.GamificationState
		_, err = store.Load(ctx, KindGamification, &out)
		require.NoError(t, err)
		assert.Equal(t, 20, out.Economy.Coins)
	})

	t.Run("no temp file remains after save", func(t *testing.T) {
		root := t.TempDir()
		store, err := NewFileStore(root, "alice")
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, KindGamification, domain.NewGamificationState()))

		entries, err := os.ReadDir(filepath.Join(root, "alice"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, string(KindGamification)+".json", entries[0].Name())
	})

	t.Run("users are isolated", func(t *testing.T) {
		root := t.TempDir()
		alice, err := NewFileStore(root, "alice")
		require.NoError(t, err)
		bob, err := NewFileStore(root, "bob")
		require.NoError(t, err)

		in := domain.NewGamificationState()
		in.Economy.Coins = 99
		require.NoError(t, alice.Save(ctx, KindGamification, in))

		var out domain.GamificationState
		found, err := bob.Load(ctx, KindGamification, &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty user id falls back to the global scope", func(t *testing.T) {
		root := t.TempDir()
		_, err := NewFileStore(root, "")
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(root, globalScopeDir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("remove deletes the snapshot and tolerates absence", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), "alice")
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, KindQuests, domain.QuestState{}))
		require.NoError(t, store.Remove(ctx, KindQuests))
		require.NoError(t, store.Remove(ctx, KindQuests))

		var out domain.QuestState
		found, err := store.Load(ctx, KindQuests, &out)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips through JSON", func(t *testing.T) {
		store := NewMemoryStore()

		in := domain.NewGamificationState()
		in.Economy.XP = 500
		require.NoError(t, store.Save(ctx, KindGamification, in))

		var out domain.GamificationState
		found, err := store.Load(ctx, KindGamification, &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 500, out.Economy.XP)
	})

	t.Run("injected save failures surface", func(t *testing.T) {
		store := NewMemoryStore()
		store.FailSaves = true
		assert.Error(t, store.Save(ctx, KindGamification, domain.NewGamificationState()))
	})
}
