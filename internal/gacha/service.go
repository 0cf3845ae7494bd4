package gacha

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tdnguyen27/StudyPet_Go/internal/buff"
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/leveling"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
	"github.com/tdnguyen27/StudyPet_Go/internal/state"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

// PetCatalog defines the catalog lookups the gacha needs.
type PetCatalog interface {
	Entries() []domain.PetCatalogEntry
	TotalChance() float64
	RareOrAbove() []domain.PetCatalogEntry
}

// SpinResult describes one resolved spin.
type SpinResult struct {
	Pet         domain.Pet `json:"pet"`
	PityCounter int        `json:"pity_counter"`
	CoinsLeft   int        `json:"coins_left"`
}

// Service defines the interface for gacha operations
type Service interface {
	Spin(ctx context.Context) (*SpinResult, error)
	Spin10(ctx context.Context) ([]SpinResult, error)
}

type service struct {
	state     *state.Manager
	catalog   PetCatalog
	generator *buff.Generator
	src       utils.RandomSource
	eventBus  event.Bus
}

// NewService creates a new gacha service
func NewService(st *state.Manager, catalog PetCatalog, generator *buff.Generator, src utils.RandomSource, eventBus event.Bus) Service {
	return &service{
		state:     st,
		catalog:   catalog,
		generator: generator,
		src:       src,
		eventBus:  eventBus,
	}
}

// Spin charges the flat spin cost and resolves one draw. The cost is never
// modifier-discounted, so it bypasses the ledger's modifier math.
func (s *service) Spin(ctx context.Context) (*SpinResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSpinCalled)

	var result SpinResult
	var events []event.Event
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		r, evts, err := s.spinLocked(ctx, st)
		if err != nil {
			return err
		}
		result = *r
		events = evts
		return nil
	})
	if err != nil {
		log.Warn(LogMsgSpinFailed, "error", err)
		return nil, err
	}

	// Published after the state lock is released; handlers may re-enter
	// state-mutating services.
	for _, evt := range events {
		s.publish(ctx, evt)
	}
	return &result, nil
}

// Spin10 resolves ten sequential draws against the same pity counter and
// ledger. Affordability is checked up front so the batch never partially
// completes.
func (s *service) Spin10(ctx context.Context) ([]SpinResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSpin10Called)

	results := make([]SpinResult, 0, SpinBatchSize)
	var events []event.Event
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		if st.Economy.Coins < SpinCost*SpinBatchSize {
			return fmt.Errorf("%w: need %d coins for %d spins", domain.ErrInsufficientFunds, SpinCost*SpinBatchSize, SpinBatchSize)
		}
		for i := 0; i < SpinBatchSize; i++ {
			r, evts, err := s.spinLocked(ctx, st)
			if err != nil {
				return err
			}
			results = append(results, *r)
			events = append(events, evts...)
		}
		return nil
	})
	if err != nil {
		log.Warn(LogMsgSpinFailed, "error", err)
		return nil, err
	}

	for _, evt := range events {
		s.publish(ctx, evt)
	}
	return results, nil
}

// spinLocked resolves a single draw against an already-locked snapshot. It
// returns the events to publish once the caller has released the lock; the
// quest handlers subscribed to them re-enter the state manager.
func (s *service) spinLocked(ctx context.Context, st *domain.GamificationState) (*SpinResult, []event.Event, error) {
	log := logger.FromContext(ctx)

	if st.Economy.Coins < SpinCost {
		return nil, nil, fmt.Errorf("%w: spin costs %d coins", domain.ErrInsufficientFunds, SpinCost)
	}

	entry, err := s.draw(ctx, st.Pity.Counter)
	if err != nil {
		return nil, nil, err
	}

	newPet := s.newPet(entry)
	st.Collection.Pets = append(st.Collection.Pets, newPet)

	if entry.Rarity.AtLeast(domain.RarityRare) {
		st.Pity.Counter = 0
	} else {
		st.Pity.Counter++
	}

	st.Economy.Coins -= SpinCost
	leveling.Apply(&st.Economy)

	log.Info(LogMsgPetDrawn, "species", newPet.Species, "rarity", newPet.Rarity, "pity", st.Pity.Counter)
	metrics.GachaSpins.WithLabelValues(string(newPet.Rarity)).Inc()
	metrics.EconomyDeltas.WithLabelValues(domain.ReasonGachaSpin).Inc()

	events := []event.Event{
		event.NewEconomyDeltaEvent(domain.ReasonGachaSpin, 0, -SpinCost, st.Economy),
		event.NewPetAcquiredEvent(newPet, st.Pity.Counter),
	}

	return &SpinResult{
		Pet:         newPet,
		PityCounter: st.Pity.Counter,
		CoinsLeft:   st.Economy.Coins,
	}, events, nil
}

// draw picks a catalog entry. At or past the pity threshold the draw is a
// uniform pick over rare-or-above entries, ignoring configured weights.
func (s *service) draw(ctx context.Context, pityCounter int) (domain.PetCatalogEntry, error) {
	if pityCounter >= PityThreshold {
		eligible := s.catalog.RareOrAbove()
		if len(eligible) == 0 {
			logger.FromContext(ctx).Warn(LogMsgNoRareEntries)
		} else {
			logger.FromContext(ctx).Info(LogMsgPityTriggered, "pity", pityCounter)
			metrics.PityTriggers.Inc()
			return eligible[s.src.Intn(len(eligible))], nil
		}
	}

	entries := s.catalog.Entries()
	if len(entries) == 0 {
		return domain.PetCatalogEntry{}, fmt.Errorf("pet catalog is empty")
	}

	r := s.src.Float64() * s.catalog.TotalChance()
	for _, e := range entries {
		if r < e.Chance {
			return e, nil
		}
		r -= e.Chance
	}

	// Floating point remainder can walk past every band.
	return entries[0], nil
}

// newPet instantiates a freshly drawn pet with a generated modifier set.
func (s *service) newPet(entry domain.PetCatalogEntry) domain.Pet {
	buffs, debuffs := s.generator.Generate(entry.Rarity)
	return domain.Pet{
		ID:              uuid.New(),
		Name:            entry.Name,
		Species:         entry.Species,
		Rarity:          entry.Rarity,
		Level:           1,
		Exp:             0,
		ExpForNextLevel: pet.ExpForLevel(1),
		Buffs:           buffs,
		Debuffs:         debuffs,
		Energy:          NewPetEnergy,
		Hunger:          NewPetHunger,
		Mood:            domain.MoodContent,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish gacha event", "type", evt.Type, "error", err)
	}
}
