package quest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen27/StudyPet_Go/internal/catalog"
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/event"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
	"github.com/tdnguyen27/StudyPet_Go/internal/repository"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

// EconomyService defines the interface for the ledger operations quests need
type EconomyService interface {
	ApplyDelta(ctx context.Context, xpDelta, coinsDelta int, reason string) (domain.EconomyState, error)
}

// Service defines the interface for quest operations
type Service interface {
	State(ctx context.Context) (domain.QuestState, error)
	ReportCategoryEvent(ctx context.Context, category domain.QuestCategory, value float64) ([]domain.Quest, error)
	CheckResets(ctx context.Context) error
	RegisterEventHandlers(bus event.Bus)
}

type service struct {
	mu       sync.Mutex
	store    repository.Store
	catalog  *catalog.QuestCatalog
	economy  EconomyService
	clock    utils.Clock
	src      utils.RandomSource
	eventBus event.Bus

	qs *domain.QuestState
}

// NewService loads the persisted quest snapshot, seeding an empty one if none
// exists. Resets are not checked here; call CheckResets after construction.
func NewService(ctx context.Context, store repository.Store, cat *catalog.QuestCatalog, economy EconomyService, clock utils.Clock, src utils.RandomSource, eventBus event.Bus) (Service, error) {
	qs := &domain.QuestState{Progress: map[uuid.UUID]float64{}}
	found, err := store.Load(ctx, repository.KindQuests, qs)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest state: %w", err)
	}
	if !found {
		qs = &domain.QuestState{Progress: map[uuid.UUID]float64{}}
	}
	if qs.Progress == nil {
		qs.Progress = map[uuid.UUID]float64{}
	}

	s := &service{
		store:    store,
		catalog:  cat,
		economy:  economy,
		clock:    clock,
		src:      src,
		eventBus: eventBus,
		qs:       qs,
	}
	if len(s.qs.Achievements) == 0 {
		s.qs.Achievements = s.instantiateAll(cat.Achievements, domain.QuestPeriodAchievement)
	}
	return s, nil
}

func (s *service) State(_ context.Context) (domain.QuestState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// ReportCategoryEvent routes an external progress event to every incomplete
// daily, weekly and achievement quest of the matching category. Completed
// quests are skipped, so redundant reports never re-grant rewards. Returns
// the quests completed by this event.
func (s *service) ReportCategoryEvent(ctx context.Context, category domain.QuestCategory, value float64) ([]domain.Quest, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReportCategoryEvent, "category", category, "value", value)

	s.mu.Lock()
	var completed []domain.Quest
	completed = append(completed, s.reportLocked(ctx, &s.qs.Daily, category, value)...)
	completed = append(completed, s.reportLocked(ctx, &s.qs.Weekly, category, value)...)
	completed = append(completed, s.reportSliceLocked(ctx, s.qs.Achievements, category, value)...)
	s.persist(ctx)
	s.mu.Unlock()

	// Rewards are granted outside the lock: the ledger publishes events whose
	// handlers may report back into this service.
	for _, q := range completed {
		s.grantReward(ctx, q)
	}
	return completed, nil
}

// grantReward applies a completed quest's reward through the ledger and
// announces the completion.
func (s *service) grantReward(ctx context.Context, q domain.Quest) {
	logger.FromContext(ctx).Info(LogMsgQuestCompleted, "quest", q.TemplateKey, "period", q.Period, "xp", q.Reward.XP, "coins", q.Reward.Coins)
	metrics.QuestCompletions.WithLabelValues(string(q.Period)).Inc()

	if _, err := s.economy.ApplyDelta(ctx, q.Reward.XP, q.Reward.Coins, domain.ReasonQuestReward); err != nil {
		logger.FromContext(ctx).Error(LogMsgRewardGrantFailed, "quest", q.TemplateKey, "error", err)
	}

	s.publish(ctx, event.NewQuestCompletedEvent(q))
}

// reportLocked updates one periodic set and then feeds the set's meta quests
// with its completed count, so "complete all other quests" guarantees track
// automatically.
func (s *service) reportLocked(ctx context.Context, set *domain.QuestSet, category domain.QuestCategory, value float64) []domain.Quest {
	completed := s.reportSliceLocked(ctx, set.Quests, category, value)

	if category != domain.QuestCategoryMeta {
		done := 0
		for i := range set.Quests {
			if set.Quests[i].Completed && set.Quests[i].Category != domain.QuestCategoryMeta {
				done++
			}
		}
		if done > 0 {
			completed = append(completed, s.reportSliceLocked(ctx, set.Quests, domain.QuestCategoryMeta, float64(done))...)
		}
	}
	return completed
}

func (s *service) reportSliceLocked(ctx context.Context, quests []domain.Quest, category domain.QuestCategory, value float64) []domain.Quest {
	log := logger.FromContext(ctx)

	var completed []domain.Quest
	for i := range quests {
		q := &quests[i]
		if q.Completed || q.Category != category {
			continue
		}

		progress := s.qs.Progress[q.ID]
		if category.Additive() {
			progress += value
		} else if value > progress {
			progress = value
		}
		s.qs.Progress[q.ID] = progress
		log.Debug(LogMsgQuestProgress, "quest", q.TemplateKey, "progress", progress, "target", q.Target)

		if progress >= q.Target {
			now := s.clock.Now()
			q.Completed = true
			q.CompletedAt = &now
			completed = append(completed, *q)
		}
	}
	return completed
}

// CheckResets regenerates the daily and weekly sets when their UTC+7 boundary
// has passed since the last reset. Meant to run once at load and once per
// minute afterwards.
func (s *service) CheckResets(ctx context.Context) error {
	s.mu.Lock()
	now := s.clock.Now()
	var resets []event.Event

	if shouldReset(s.qs.Daily.LastResetAt, now, dailyBoundary) {
		resets = append(resets, s.resetLocked(ctx, &s.qs.Daily, domain.QuestPeriodDaily, dailyBoundary(now)))
	}
	if shouldReset(s.qs.Weekly.LastResetAt, now, weeklyBoundary) {
		resets = append(resets, s.resetLocked(ctx, &s.qs.Weekly, domain.QuestPeriodWeekly, weeklyBoundary(now)))
	}

	if len(resets) > 0 {
		s.persist(ctx)
	}
	s.mu.Unlock()

	for _, evt := range resets {
		s.publish(ctx, evt)
	}
	return nil
}

// resetLocked regenerates one periodic set, clears its progress entries and
// stamps the reset to the boundary instant rather than the check time.
func (s *service) resetLocked(ctx context.Context, set *domain.QuestSet, period domain.QuestPeriod, boundary time.Time) event.Event {
	for i := range set.Quests {
		delete(s.qs.Progress, set.Quests[i].ID)
	}

	set.Quests = s.generate(period)
	set.LastResetAt = &boundary

	msg := LogMsgDailyReset
	if period == domain.QuestPeriodWeekly {
		msg = LogMsgWeeklyReset
	}
	logger.FromContext(ctx).Info(msg, "boundary", boundary, "quests", len(set.Quests))
	metrics.QuestResets.WithLabelValues(string(period)).Inc()

	return event.NewQuestResetEvent(period, boundary, len(set.Quests))
}

// generate builds a fresh set: the period's guaranteed quest plus a
// shuffle-then-take draw from its pool.
func (s *service) generate(period domain.QuestPeriod) []domain.Quest {
	var guaranteed domain.QuestTemplate
	var pool []domain.QuestTemplate
	picks := DailyPoolPicks
	if period == domain.QuestPeriodWeekly {
		guaranteed = s.catalog.WeeklyGuaranteed
		pool = s.catalog.WeeklyPool
		picks = WeeklyPoolPicks
	} else {
		guaranteed = s.catalog.DailyGuaranteed
		pool = s.catalog.DailyPool
	}

	shuffled := make([]domain.QuestTemplate, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if picks > len(shuffled) {
		picks = len(shuffled)
	}

	quests := make([]domain.Quest, 0, picks+1)
	quests = append(quests, s.instantiate(guaranteed, period))
	for _, tmpl := range shuffled[:picks] {
		quests = append(quests, s.instantiate(tmpl, period))
	}
	return quests
}

func (s *service) instantiate(tmpl domain.QuestTemplate, period domain.QuestPeriod) domain.Quest {
	return domain.Quest{
		ID:          uuid.New(),
		TemplateKey: tmpl.Key,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Category:    tmpl.Category,
		Period:      period,
		Target:      tmpl.Target,
		Reward:      domain.QuestReward{XP: tmpl.RewardXP, Coins: tmpl.RewardCoins},
	}
}

func (s *service) instantiateAll(tmpls []domain.QuestTemplate, period domain.QuestPeriod) []domain.Quest {
	out := make([]domain.Quest, 0, len(tmpls))
	for _, tmpl := range tmpls {
		out = append(out, s.instantiate(tmpl, period))
	}
	return out
}

// RegisterEventHandlers subscribes quest progress tracking to engine events:
// the user's level becomes the high-water mark for level quests, and pet
// level ups count toward pet quests.
func (s *service) RegisterEventHandlers(bus event.Bus) {
	bus.Subscribe(event.Type(domain.EventTypeEconomyDelta), func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.EconomyDeltaPayloadV1)
		if !ok {
			return nil
		}
		_, err := s.ReportCategoryEvent(ctx, domain.QuestCategoryLevel, float64(payload.NewLevel))
		return err
	})

	bus.Subscribe(event.Type(domain.EventTypePetLevelUp), func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.PetLevelUpPayloadV1)
		if !ok {
			return nil
		}
		_, err := s.ReportCategoryEvent(ctx, domain.QuestCategoryPet, float64(payload.NewLevel-payload.OldLevel))
		return err
	})
}

// persist saves the quest snapshot, warn-and-continue on failure.
func (s *service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, repository.KindQuests, s.qs); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistWarning, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish quest event", "type", evt.Type, "error", err)
	}
}

// snapshot deep-copies the quest state for read access.
func (s *service) snapshot() domain.QuestState {
	out := domain.QuestState{
		Daily:        copySet(s.qs.Daily),
		Weekly:       copySet(s.qs.Weekly),
		Achievements: append([]domain.Quest(nil), s.qs.Achievements...),
		Progress:     make(map[uuid.UUID]float64, len(s.qs.Progress)),
	}
	for k, v := range s.qs.Progress {
		out.Progress[k] = v
	}
	return out
}

func copySet(set domain.QuestSet) domain.QuestSet {
	out := domain.QuestSet{Quests: append([]domain.Quest(nil), set.Quests...)}
	if set.LastResetAt != nil {
		t := *set.LastResetAt
		out.LastResetAt = &t
	}
	return out
}
