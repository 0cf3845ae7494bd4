package economy

import (
	"context"
	"fmt"
	"math"

	"github.com/tdnguyen27/StudyPet_Go/internal/catalog"
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/leveling"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
	"github.com/tdnguyen27/StudyPet_Go/internal/state"
)

// FocusReward is the resolved reward for one completed focus session.
type FocusReward struct {
	XP          int                 `json:"xp"`
	Coins       int                 `json:"coins"`
	EnergyBoost int                 `json:"energy_boost"`
	Multiplier  float64             `json:"multiplier"`
	Economy     domain.EconomyState `json:"economy"`
}

// Service defines the interface for economy ledger operations
type Service interface {
	State(ctx context.Context) (domain.EconomyState, error)
	ApplyDelta(ctx context.Context, xpDelta, coinsDelta int, reason string) (domain.EconomyState, error)
	CompleteTask(ctx context.Context) (domain.EconomyState, error)
	UncompleteTask(ctx context.Context) (domain.EconomyState, error)
	CompleteFocusSession(ctx context.Context, minutes int) (*FocusReward, error)
	BuyFood(ctx context.Context, foodID string, quantity int) (domain.FoodInventory, error)
}

// PetService defines the interface for the pet operations the ledger needs
type PetService interface {
	BoostEquippedEnergy(ctx context.Context, amount int) error
}

type service struct {
	state    *state.Manager
	catalog  *catalog.Catalog
	petSvc   PetService
	eventBus event.Bus
}

// NewService creates a new economy ledger service
func NewService(st *state.Manager, cat *catalog.Catalog, petSvc PetService, eventBus event.Bus) Service {
	return &service{
		state:    st,
		catalog:  cat,
		petSvc:   petSvc,
		eventBus: eventBus,
	}
}

func (s *service) State(_ context.Context) (domain.EconomyState, error) {
	var out domain.EconomyState
	s.state.View(func(st *domain.GamificationState) {
		out = st.Economy
	})
	return out, nil
}

// ApplyDelta applies a signed XP/coin delta after combining it with the sum
// of all equipped pets' scaled modifiers. Totals clamp at zero; there is no
// error condition for the arithmetic itself.
func (s *service) ApplyDelta(ctx context.Context, xpDelta, coinsDelta int, reason string) (domain.EconomyState, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApplyDeltaCalled, "xp_delta", xpDelta, "coins_delta", coinsDelta, "reason", reason)

	var out domain.EconomyState
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		mods := pet.CombinedModifiers(&st.Collection)

		effectiveXP := applyModifiers(xpDelta, mods.XPBoost, mods.XPPenalty)
		effectiveCoins := applyModifiers(coinsDelta, mods.CoinBoost, mods.CoinPenalty)

		st.Economy.XP = clampNonNegative(st.Economy.XP + effectiveXP)
		st.Economy.Coins = clampNonNegative(st.Economy.Coins + effectiveCoins)
		leveling.Apply(&st.Economy)

		out = st.Economy
		return nil
	})
	if err != nil {
		return domain.EconomyState{}, err
	}

	metrics.EconomyDeltas.WithLabelValues(reason).Inc()
	s.publish(ctx, event.NewEconomyDeltaEvent(reason, xpDelta, coinsDelta, out))
	return out, nil
}

// CompleteTask applies the fixed task-completion reward.
func (s *service) CompleteTask(ctx context.Context) (domain.EconomyState, error) {
	e, err := s.ApplyDelta(ctx, domain.TaskRewardXP, domain.TaskRewardCoins, domain.ReasonTaskCompleted)
	if err != nil {
		return e, err
	}
	logger.FromContext(ctx).Info(LogMsgTaskCompleted, "xp", domain.TaskRewardXP, "coins", domain.TaskRewardCoins)
	return e, nil
}

// UncompleteTask applies the exact negation of the task-completion reward.
func (s *service) UncompleteTask(ctx context.Context) (domain.EconomyState, error) {
	e, err := s.ApplyDelta(ctx, -domain.TaskRewardXP, -domain.TaskRewardCoins, domain.ReasonTaskUncompleted)
	if err != nil {
		return e, err
	}
	logger.FromContext(ctx).Info(LogMsgTaskUncompleted)
	return e, nil
}

// FocusMultiplier returns the duration multiplier for a focus session:
// min(1 + minutes/60*2, 5).
func FocusMultiplier(minutes int) float64 {
	return math.Min(1+float64(minutes)/60*FocusMultiplierGrowth, FocusMultiplierCap)
}

// CompleteFocusSession applies the duration-scaled focus reward and boosts
// the energy of all equipped pets.
func (s *service) CompleteFocusSession(ctx context.Context, minutes int) (*FocusReward, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("%w: focus session minutes must be positive", domain.ErrInvalidSelection)
	}

	mult := FocusMultiplier(minutes)
	xp := int(math.Floor(float64(minutes) * FocusXPPerMinute * mult))
	coins := int(math.Floor(float64(minutes) * FocusCoinsPerMinute * mult))
	energy := minutes / FocusEnergyPerMinutes
	if energy > FocusEnergyCap {
		energy = FocusEnergyCap
	}

	economyState, err := s.ApplyDelta(ctx, xp, coins, domain.ReasonFocusSession)
	if err != nil {
		return nil, err
	}

	if energy > 0 && s.petSvc != nil {
		if err := s.petSvc.BoostEquippedEnergy(ctx, energy); err != nil {
			return nil, fmt.Errorf("failed to boost equipped pets: %w", err)
		}
	}

	logger.FromContext(ctx).Info(LogMsgFocusSessionReward, "minutes", minutes, "xp", xp, "coins", coins, "energy_boost", energy)

	return &FocusReward{
		XP:          xp,
		Coins:       coins,
		EnergyBoost: energy,
		Multiplier:  mult,
		Economy:     economyState,
	}, nil
}

// BuyFood exchanges coins for food inventory units. The purchase is a plain
// balance check; ledger modifiers do not apply to shop prices.
func (s *service) BuyFood(ctx context.Context, foodID string, quantity int) (domain.FoodInventory, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidSelection)
	}

	food, ok := s.catalog.Food(foodID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, foodID)
	}
	cost := food.Cost * quantity

	var out domain.FoodInventory
	err := s.state.Update(ctx, func(st *domain.GamificationState) error {
		if st.Economy.Coins < cost {
			return fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, cost, st.Economy.Coins)
		}
		st.Economy.Coins -= cost
		st.Food[foodID] += quantity

		out = make(domain.FoodInventory, len(st.Food))
		for k, v := range st.Food {
			out[k] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgFoodPurchased, "food", foodID, "quantity", quantity, "cost", cost)
	return out, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish economy event", "type", evt.Type, "error", err)
	}
}

// applyModifiers resolves one signed delta against the combined boost and
// penalty percentages. Boosts shrink the magnitude of a negative delta; this
// asymmetry is deliberate.
func applyModifiers(delta, boost, penalty int) int {
	if delta == 0 {
		return 0
	}
	b := float64(boost) / 100
	p := float64(penalty) / 100
	if delta > 0 {
		return int(math.Floor(float64(delta) * (1 + b) * (1 - p)))
	}
	return int(math.Floor(float64(delta) * (1 - b) * (1 + p)))
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
