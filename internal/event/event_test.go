package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

func TestMemoryBus(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to every subscriber of the type", func(t *testing.T) {
		bus := NewMemoryBus()

		var got []Event
		bus.Subscribe(Type(domain.EventTypeEconomyDelta), func(_ context.Context, e Event) error {
			got = append(got, e)
			return nil
		})
		bus.Subscribe(Type(domain.EventTypeEconomyDelta), func(_ context.Context, e Event) error {
			got = append(got, e)
			return nil
		})

		evt := NewEconomyDeltaEvent(domain.ReasonTaskCompleted, 60, 12, domain.EconomyState{XP: 60, Coins: 12, Level: 1})
		require.NoError(t, bus.Publish(ctx, evt))

		require.Len(t, got, 2)
		payload, ok := got[0].Payload.(EconomyDeltaPayloadV1)
		require.True(t, ok)
		assert.Equal(t, domain.ReasonTaskCompleted, payload.Reason)
		assert.Equal(t, 60, payload.NewXP)
		assert.Equal(t, EventSchemaVersion, got[0].Version)
	})

	t.Run("unrelated types are not delivered", func(t *testing.T) {
		bus := NewMemoryBus()

		called := false
		bus.Subscribe(Type(domain.EventTypePetAcquired), func(_ context.Context, _ Event) error {
			called = true
			return nil
		})

		require.NoError(t, bus.Publish(ctx, NewPetLevelUpEvent(uuid.New(), 1, 2)))
		assert.False(t, called)
	})

	t.Run("publishing with no subscribers succeeds", func(t *testing.T) {
		bus := NewMemoryBus()
		assert.NoError(t, bus.Publish(ctx, NewQuestResetEvent(domain.QuestPeriodDaily, time.Now(), 5)))
	})

	t.Run("handler failures aggregate without stopping delivery", func(t *testing.T) {
		bus := NewMemoryBus()

		calls := 0
		bus.Subscribe(Type(domain.EventTypePetLevelUp), func(_ context.Context, _ Event) error {
			calls++
			return fmt.Errorf("first handler failed")
		})
		bus.Subscribe(Type(domain.EventTypePetLevelUp), func(_ context.Context, _ Event) error {
			calls++
			return nil
		})

		err := bus.Publish(ctx, NewPetLevelUpEvent(uuid.New(), 1, 2))
		assert.ErrorContains(t, err, "1 handler(s) failed")
		assert.Equal(t, 2, calls)
	})
}

func TestEventConstructors(t *testing.T) {
	t.Run("pet acquired carries the draw context", func(t *testing.T) {
		p := domain.Pet{ID: uuid.New(), Species: "lunamoth", Rarity: domain.RarityRare}
		evt := NewPetAcquiredEvent(p, 0)

		payload, ok := evt.Payload.(PetAcquiredPayloadV1)
		require.True(t, ok)
		assert.Equal(t, p.ID, payload.PetID)
		assert.Equal(t, domain.RarityRare, payload.Rarity)
		assert.Equal(t, 0, payload.PityCounter)
	})

	t.Run("quest completed carries the reward", func(t *testing.T) {
		q := domain.Quest{
			ID:          uuid.New(),
			TemplateKey: "daily_tasks_3",
			Period:      domain.QuestPeriodDaily,
			Reward:      domain.QuestReward{XP: 60, Coins: 15},
		}
		evt := NewQuestCompletedEvent(q)

		payload, ok := evt.Payload.(QuestCompletedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, q.ID, payload.QuestID)
		assert.Equal(t, 60, payload.RewardXP)
		assert.Equal(t, 15, payload.RewardCoins)
	})
}
