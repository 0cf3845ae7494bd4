package pet

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
	"github.com/tdnguyen27/StudyPet_Go/internal/state"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

// PlayResult describes the outcome of one play action.
type PlayResult struct {
	Pet          domain.Pet `json:"pet"`
	ExpGained    int        `json:"exp_gained"`
	LevelsGained int        `json:"levels_gained"`
}

// FoodCatalog defines the catalog lookups the pet engine needs
type FoodCatalog interface {
	Food(id string) (domain.Food, bool)
}

// Service defines the interface for pet growth and mood operations
type Service interface {
	Collection(ctx context.Context) (domain.PetCollection, error)
	Feed(ctx context.Context, petID uuid.UUID, foodID string, quantity int) (domain.Pet, error)
	Play(ctx context.Context, petID uuid.UUID) (*PlayResult, error)
	Equip(ctx context.Context, petID uuid.UUID) error
	Unequip(ctx context.Context, petID uuid.UUID) error
	Delete(ctx context.Context, petID uuid.UUID) error
	BoostEquippedEnergy(ctx context.Context, amount int) error
}

type service struct {
	state    *state.Manager
	foods    FoodCatalog
	clock    utils.Clock
	eventBus event.Bus
}

// NewService creates a new pet service
func NewService(st *state.Manager, foods FoodCatalog, clock utils.Clock, eventBus event.Bus) Service {
	return &service{
		state:    st,
		foods:    foods,
		clock:    clock,
		eventBus: eventBus,
	}
}

func (s *service) Collection(_ context.Context) (domain.PetCollection, error) {
	var out domain.PetCollection
	s.state.View(func(st *domain.GamificationState) {
		out = snapshotCollection(&st.Collection)
	})
	return out, nil
}

// Feed consumes food units and applies their hunger/energy/mood effects.
func (s *service) Feed(ctx context.Context, petID uuid.UUID, foodID string, quantity int) (domain.Pet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFeedCalled, "pet_id", petID, "food", foodID, "quantity", quantity)

	if quantity < 1 {
		return domain.Pet{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidSelection)
	}

	food, ok := s.foods.Food(foodID)
	if !ok {
		return domain.Pet{}, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, foodID)
	}

	var out domain.Pet
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		p := st.Collection.Find(petID)
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
		}
		if st.Food[foodID] < quantity {
			return fmt.Errorf("%w: %s", domain.ErrFoodNotOwned, foodID)
		}

		now := s.clock.Now()
		s.expireStale(ctx, p, now)

		st.Food[foodID] -= quantity
		if st.Food[foodID] == 0 {
			delete(st.Food, foodID)
		}

		p.Hunger = clamp(p.Hunger-food.HungerReduction*quantity, MinHunger, MaxHunger)
		p.Energy = clamp(p.Energy+food.EnergyBoost*quantity, MinEnergy, MaxEnergy)

		switch {
		case food.Cleanses:
			p.Mood = domain.MoodContent
			p.MoodExpiresAt = nil
			p.SpecialBuff = nil
		case food.FavoriteOf == p.Species:
			applyFavorite(p, food, now)
		default:
			expiry := now.Add(time.Duration(food.MoodDurationMinutes) * time.Minute)
			p.Mood = food.Mood
			p.MoodExpiresAt = &expiry
		}

		out = clonePet(p)
		return nil
	})
	if err != nil {
		return domain.Pet{}, err
	}

	metrics.PetFeeds.Inc()
	return out, nil
}

// applyFavorite forces the maximum mood tier and installs the food's
// temporary special buff, pinning energy/hunger if the buff says so.
func applyFavorite(p *domain.Pet, food domain.Food, now time.Time) {
	moodExpiry := now.Add(FavoriteMoodDurationMinutes * time.Minute)
	p.Mood = domain.MoodEcstatic
	p.MoodExpiresAt = &moodExpiry

	if food.SpecialBuff == nil {
		return
	}
	p.SpecialBuff = &domain.SpecialBuff{
		ExpBoostPercent: food.SpecialBuff.ExpBoostPercent,
		InfiniteEnergy:  food.SpecialBuff.InfiniteEnergy,
		InfiniteHunger:  food.SpecialBuff.InfiniteHunger,
		ExpiresAt:       now.Add(time.Duration(food.SpecialBuff.DurationMinutes) * time.Minute),
	}
	if p.SpecialBuff.InfiniteEnergy {
		p.Energy = MaxEnergy
	}
	if p.SpecialBuff.InfiniteHunger {
		p.Hunger = MinHunger
	}
}

// Play resolves one play action into an experience gain and stat deltas.
func (s *service) Play(ctx context.Context, petID uuid.UUID) (*PlayResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlayCalled, "pet_id", petID)

	var result PlayResult
	var levelUp event.Event
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		p := st.Collection.Find(petID)
		if p == nil {
			return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
		}

		now := s.clock.Now()
		s.expireStale(ctx, p, now)

		infiniteEnergy := p.SpecialBuff != nil && p.SpecialBuff.InfiniteEnergy
		infiniteHunger := p.SpecialBuff != nil && p.SpecialBuff.InfiniteHunger

		if p.Energy <= MinEnergy && !infiniteEnergy {
			return fmt.Errorf("%w: %s has no energy left", domain.ErrPetExhausted, p.Name)
		}

		gain := float64(PlayBaseExp + int(math.Floor(float64(p.Level)*PlayExpPerLevel)))
		gain *= p.Mood.ExpMultiplier()
		if p.SpecialBuff != nil {
			gain *= 1 + float64(p.SpecialBuff.ExpBoostPercent)/100
		}
		expGain := int(gain)
		if (p.Hunger > HungerSlowdownAt && !infiniteHunger) || (p.Energy < EnergySlowdownAt && !infiniteEnergy) {
			expGain = expGain / 2
		}

		if infiniteEnergy {
			p.Energy = MaxEnergy
		} else {
			p.Energy = clamp(p.Energy-PlayEnergyCost, MinEnergy, MaxEnergy)
		}
		if infiniteHunger {
			p.Hunger = MinHunger
		} else {
			p.Hunger = clamp(p.Hunger+PlayHungerGain, MinHunger, MaxHunger)
		}

		oldLevel := p.Level
		levels := gainExp(p, expGain)
		if levels > 0 {
			log.Info(LogMsgPetLeveledUp, "pet_id", p.ID, "old_level", oldLevel, "new_level", p.Level)
			levelUp = event.NewPetLevelUpEvent(p.ID, oldLevel, p.Level)
			metrics.PetLevelUps.Add(float64(levels))
		}

		result = PlayResult{Pet: clonePet(p), ExpGained: expGain, LevelsGained: levels}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Published after the state lock is released; the quest handler for
	// level-ups re-enters the state manager when a reward is granted.
	if levelUp.Type != "" {
		s.publish(ctx, levelUp)
	}

	metrics.PetPlays.Inc()
	return &result, nil
}

// Equip adds the pet to the equipped set.
func (s *service) Equip(ctx context.Context, petID uuid.UUID) error {
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		if st.Collection.Find(petID) == nil {
			return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
		}
		if st.Collection.IsEquipped(petID) {
			return nil
		}
		if len(st.Collection.Equipped) >= domain.MaxEquippedPets {
			return fmt.Errorf("%w: at most %d pets can be equipped", domain.ErrEquipLimit, domain.MaxEquippedPets)
		}
		st.Collection.Equipped = append(st.Collection.Equipped, petID)
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPetEquipped, "pet_id", petID)
	return nil
}

// Unequip removes the pet from the equipped set. Always succeeds.
func (s *service) Unequip(ctx context.Context, petID uuid.UUID) error {
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		for i, id := range st.Collection.Equipped {
			if id == petID {
				st.Collection.Equipped = append(st.Collection.Equipped[:i], st.Collection.Equipped[i+1:]...)
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPetUnequipped, "pet_id", petID)
	return nil
}

// Delete removes an owned pet. Equipped pets cannot be deleted.
func (s *service) Delete(ctx context.Context, petID uuid.UUID) error {
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		if st.Collection.IsEquipped(petID) {
			return fmt.Errorf("%w: unequip before deleting", domain.ErrPetEquipped)
		}
		for i := range st.Collection.Pets {
			if st.Collection.Pets[i].ID == petID {
				st.Collection.Pets = append(st.Collection.Pets[:i], st.Collection.Pets[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPetDeleted, "pet_id", petID)
	return nil
}

// BoostEquippedEnergy raises the energy of every equipped pet, clamped to the
// maximum. Used by the focus-session reward.
func (s *service) BoostEquippedEnergy(ctx context.Context, amount int) error {
	if amount <= 0 {
		return nil
	}
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		for _, p := range st.Collection.EquippedPets() {
			p.Energy = clamp(p.Energy+amount, MinEnergy, MaxEnergy)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgEnergyBoosted, "amount", amount)
	return nil
}

// expireStale lazily reverts expired mood and special-buff state before an
// operation reads it.
func (s *service) expireStale(ctx context.Context, p *domain.Pet, now time.Time) {
	if p.MoodExpiresAt != nil && now.After(*p.MoodExpiresAt) {
		logger.FromContext(ctx).Debug(LogMsgMoodExpired, "pet_id", p.ID, "mood", p.Mood)
		p.Mood = domain.MoodContent
		p.MoodExpiresAt = nil
	}
	if p.SpecialBuff != nil && now.After(p.SpecialBuff.ExpiresAt) {
		logger.FromContext(ctx).Debug(LogMsgBuffExpired, "pet_id", p.ID)
		p.SpecialBuff = nil
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish pet event", "type", evt.Type, "error", err)
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clonePet deep-copies a pet so callers never alias the snapshot's maps.
func clonePet(p *domain.Pet) domain.Pet {
	out := *p
	out.Buffs = make(map[domain.ModifierKind]int, len(p.Buffs))
	for k, v := range p.Buffs {
		out.Buffs[k] = v
	}
	out.Debuffs = make(map[domain.ModifierKind]int, len(p.Debuffs))
	for k, v := range p.Debuffs {
		out.Debuffs[k] = v
	}
	if p.MoodExpiresAt != nil {
		t := *p.MoodExpiresAt
		out.MoodExpiresAt = &t
	}
	if p.SpecialBuff != nil {
		b := *p.SpecialBuff
		out.SpecialBuff = &b
	}
	return out
}

// snapshotCollection deep-copies the collection for read access.
func snapshotCollection(c *domain.PetCollection) domain.PetCollection {
	out := domain.PetCollection{
		Pets:     make([]domain.Pet, 0, len(c.Pets)),
		Equipped: append([]uuid.UUID(nil), c.Equipped...),
	}
	for i := range c.Pets {
		out.Pets = append(out.Pets, clonePet(&c.Pets[i]))
	}
	return out
}
