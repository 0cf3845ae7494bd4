package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
)

// EventSchemaVersion is stamped on every published event.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// EconomyDeltaPayloadV1 is published after every ledger application.
type EconomyDeltaPayloadV1 struct {
	Reason    string `json:"reason"`
	XPDelta   int    `json:"xp_delta"`
	CoinDelta int    `json:"coin_delta"`
	NewXP     int    `json:"new_xp"`
	NewCoins  int    `json:"new_coins"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// PetAcquiredPayloadV1 is published when the gacha produces a pet.
type PetAcquiredPayloadV1 struct {
	PetID       uuid.UUID     `json:"pet_id"`
	Species     string        `json:"species"`
	Rarity      domain.Rarity `json:"rarity"`
	PityCounter int           `json:"pity_counter"`
	Timestamp   int64         `json:"timestamp"`
}

// PetLevelUpPayloadV1 is published when play levels a pet up.
type PetLevelUpPayloadV1 struct {
	PetID    uuid.UUID `json:"pet_id"`
	OldLevel int       `json:"old_level"`
	NewLevel int       `json:"new_level"`
}

// QuestCompletedPayloadV1 is published when a quest auto-completes.
type QuestCompletedPayloadV1 struct {
	QuestID     uuid.UUID          `json:"quest_id"`
	TemplateKey string             `json:"template_key"`
	Period      domain.QuestPeriod `json:"period"`
	RewardXP    int                `json:"reward_xp"`
	RewardCoins int                `json:"reward_coins"`
}

// QuestResetPayloadV1 is published after a daily or weekly reset.
type QuestResetPayloadV1 struct {
	Period     domain.QuestPeriod `json:"period"`
	ResetTime  time.Time          `json:"reset_time"`
	QuestCount int                `json:"quest_count"`
}

// NewEconomyDeltaEvent creates a new economy delta event with type-safe payload.
func NewEconomyDeltaEvent(reason string, xpDelta, coinDelta int, e domain.EconomyState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeEconomyDelta),
		Payload: EconomyDeltaPayloadV1{
			Reason:    reason,
			XPDelta:   xpDelta,
			CoinDelta: coinDelta,
			NewXP:     e.XP,
			NewCoins:  e.Coins,
			NewLevel:  e.Level,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPetAcquiredEvent creates a new pet acquired event.
func NewPetAcquiredEvent(pet domain.Pet, pityCounter int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePetAcquired),
		Payload: PetAcquiredPayloadV1{
			PetID:       pet.ID,
			Species:     pet.Species,
			Rarity:      pet.Rarity,
			PityCounter: pityCounter,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewPetLevelUpEvent creates a new pet level up event.
func NewPetLevelUpEvent(petID uuid.UUID, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePetLevelUp),
		Payload: PetLevelUpPayloadV1{
			PetID:    petID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
	}
}

// NewQuestCompletedEvent creates a new quest completed event.
func NewQuestCompletedEvent(q domain.Quest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeQuestCompleted),
		Payload: QuestCompletedPayloadV1{
			QuestID:     q.ID,
			TemplateKey: q.TemplateKey,
			Period:      q.Period,
			RewardXP:    q.Reward.XP,
			RewardCoins: q.Reward.Coins,
		},
	}
}

// NewQuestResetEvent creates a new quest reset event.
func NewQuestResetEvent(period domain.QuestPeriod, resetTime time.Time, questCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeQuestReset),
		Payload: QuestResetPayloadV1{
			Period:     period,
			ResetTime:  resetTime,
			QuestCount: questCount,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
