package gacha

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/buff"
	"github.com/tdnguyen27/StudyPet_Go/internal/catalog"
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/economy"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
	"github.com/tdnguyen27/StudyPet_Go/internal/quest"
	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
	"github.com/tdnguyen27/StudyPet_Go/internal/state"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

// stubSource returns the same values on every call, which pins the weighted
// walk to a known catalog band.
type stubSource struct {
	f float64
	n int
}

func (s stubSource) Float64() float64 { return s.f }
func (s stubSource) Intn(n int) int   { return s.n % n }

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.PetCatalogEntry{
		{Species: "capych", Name: "Cappy", Rarity: domain.RarityCommon, Chance: 90},
		{Species: "glimmerfox", Name: "Glim", Rarity: domain.RarityRare, Chance: 10},
	}, nil, catalog.QuestCatalog{})
}

func newTestService(t *testing.T, src stubSource, seed func(st *domain.GamificationState)) (Service, *state.Manager) {
	t.Helper()

	manager, err := state.NewManager(context.Background(), repository.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, manager.Update(context.Background(), func(st *domain.GamificationState) error {
		if seed != nil {
			seed(st)
		}
		return nil
	}))

	svc := NewService(manager, testCatalog(), buff.NewGenerator(src), src, event.NewMemoryBus())
	return svc, manager
}

func TestSpin(t *testing.T) {
	ctx := context.Background()

	t.Run("charges flat cost and adds a pet", func(t *testing.T) {
		svc, manager := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost
		})

		result, err := svc.Spin(ctx)
		require.NoError(t, err)

		assert.Equal(t, "capych", result.Pet.Species)
		assert.Equal(t, 0, result.CoinsLeft)
		assert.Equal(t, 1, result.PityCounter)

		manager.View(func(st *domain.GamificationState) {
			assert.Len(t, st.Collection.Pets, 1)
			assert.Equal(t, 0, st.Economy.Coins)
		})
	})

	t.Run("new pet starts at the fixed baseline", func(t *testing.T) {
		svc, _ := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost
		})

		result, err := svc.Spin(ctx)
		require.NoError(t, err)

		p := result.Pet
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 0, p.Exp)
		assert.Equal(t, NewPetEnergy, p.Energy)
		assert.Equal(t, NewPetHunger, p.Hunger)
		assert.Equal(t, domain.MoodContent, p.Mood)
		assert.NotEqual(t, p.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("weighted walk lands in the rare band", func(t *testing.T) {
		svc, _ := newTestService(t, stubSource{f: 0.95}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost
		})

		result, err := svc.Spin(ctx)
		require.NoError(t, err)

		assert.Equal(t, "glimmerfox", result.Pet.Species)
		assert.Equal(t, 0, result.PityCounter, "rare draw resets pity")
	})

	t.Run("sub-rare draws accumulate pity", func(t *testing.T) {
		svc, manager := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost * 5
		})

		for i := 1; i <= 5; i++ {
			result, err := svc.Spin(ctx)
			require.NoError(t, err)
			assert.Equal(t, i, result.PityCounter)
		}

		manager.View(func(st *domain.GamificationState) {
			assert.Equal(t, 5, st.Pity.Counter)
		})
	})

	t.Run("pity threshold forces a rare draw despite common-favoring rolls", func(t *testing.T) {
		// Float64 of 0 would always land in the common band; the pity path
		// must override it.
		svc, _ := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost
			st.Pity.Counter = PityThreshold
		})

		result, err := svc.Spin(ctx)
		require.NoError(t, err)

		assert.True(t, result.Pet.Rarity.AtLeast(domain.RarityRare))
		assert.Equal(t, 0, result.PityCounter)
	})

	t.Run("insufficient funds mutates nothing", func(t *testing.T) {
		svc, manager := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost - 1
			st.Pity.Counter = 4
		})

		_, err := svc.Spin(ctx)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		manager.View(func(st *domain.GamificationState) {
			assert.Equal(t, SpinCost-1, st.Economy.Coins)
			assert.Equal(t, 4, st.Pity.Counter)
			assert.Empty(t, st.Collection.Pets)
		})
	})
}

func TestSpin10(t *testing.T) {
	ctx := context.Background()

	t.Run("ten draws against one balance and pity counter", func(t *testing.T) {
		svc, manager := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost * SpinBatchSize
		})

		results, err := svc.Spin10(ctx)
		require.NoError(t, err)
		require.Len(t, results, SpinBatchSize)

		assert.Equal(t, 0, results[SpinBatchSize-1].CoinsLeft)
		assert.Equal(t, SpinBatchSize, results[SpinBatchSize-1].PityCounter)

		manager.View(func(st *domain.GamificationState) {
			assert.Len(t, st.Collection.Pets, SpinBatchSize)
			assert.Equal(t, 0, st.Economy.Coins)
		})
	})

	t.Run("pity can trigger mid-batch", func(t *testing.T) {
		svc, _ := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost * SpinBatchSize
			st.Pity.Counter = PityThreshold - 2
		})

		results, err := svc.Spin10(ctx)
		require.NoError(t, err)

		// Two commons reach the threshold, the third draw is pity-forced.
		assert.Equal(t, domain.RarityCommon, results[0].Pet.Rarity)
		assert.Equal(t, domain.RarityCommon, results[1].Pet.Rarity)
		assert.True(t, results[2].Pet.Rarity.AtLeast(domain.RarityRare))
		assert.Equal(t, 0, results[2].PityCounter)
	})

	t.Run("rejects the batch up front when one spin short", func(t *testing.T) {
		svc, manager := newTestService(t, stubSource{f: 0}, func(st *domain.GamificationState) {
			st.Economy.Coins = SpinCost*SpinBatchSize - 1
		})

		_, err := svc.Spin10(ctx)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		manager.View(func(st *domain.GamificationState) {
			assert.Equal(t, SpinCost*SpinBatchSize-1, st.Economy.Coins)
			assert.Empty(t, st.Collection.Pets)
		})
	})
}

// TestSpinEventsReachQuestHandlers wires gacha, economy and quest services
// onto one bus the way the app does. The spin's ledger event completes a
// level achievement, and granting its reward re-enters the state manager, so
// the spin must publish only after its own update has committed.
func TestSpinEventsReachQuestHandlers(t *testing.T) {
	ctx := context.Background()

	store := repository.NewMemoryStore()
	manager, err := state.NewManager(ctx, store)
	require.NoError(t, err)

	require.NoError(t, manager.Update(ctx, func(st *domain.GamificationState) error {
		st.Economy.XP = 2200
		st.Economy.Level = 5
		st.Economy.Coins = SpinCost
		return nil
	}))

	bus := event.NewMemoryBus()
	cat := testCatalog()
	src := stubSource{f: 0}
	clock := utils.SystemClock{}

	petService := pet.NewService(manager, cat, clock, bus)
	economyService := economy.NewService(manager, cat, petService, bus)
	gachaService := NewService(manager, cat, buff.NewGenerator(src), src, bus)

	questCatalog := catalog.QuestCatalog{
		Achievements: []domain.QuestTemplate{
			{Key: "reach_level_5", Title: "Seasoned Scholar", Category: domain.QuestCategoryLevel, Target: 5, RewardXP: 40, RewardCoins: 10},
		},
	}
	questService, err := quest.NewService(ctx, store, &questCatalog, economyService, clock, src, bus)
	require.NoError(t, err)
	questService.RegisterEventHandlers(bus)

	done := make(chan error, 1)
	go func() {
		_, spinErr := gachaService.Spin(ctx)
		done <- spinErr
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("spin did not return; an event handler is blocked on the state lock")
	}

	qs, err := questService.State(ctx)
	require.NoError(t, err)
	require.Len(t, qs.Achievements, 1)
	assert.True(t, qs.Achievements[0].Completed)

	manager.View(func(st *domain.GamificationState) {
		assert.Equal(t, 2240, st.Economy.XP, "achievement reward applied through the ledger")
		assert.Equal(t, 10, st.Economy.Coins)
		assert.Len(t, st.Collection.Pets, 1)
	})
}
