package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestCategory routes category events to matching quests.
type QuestCategory string

const (
	QuestCategoryTasks    QuestCategory = "tasks"
	QuestCategoryStudy    QuestCategory = "study"
	QuestCategoryPomodoro QuestCategory = "pomodoro"
	QuestCategoryPet      QuestCategory = "pet"
	QuestCategoryLevel    QuestCategory = "level"
	QuestCategoryMeta     QuestCategory = "meta"
)

// Additive reports whether progress for the category accumulates event values.
// Level and meta quests track an absolute high-water mark instead.
func (c QuestCategory) Additive() bool {
	switch c {
	case QuestCategoryLevel, QuestCategoryMeta:
		return false
	default:
		return true
	}
}

// QuestPeriod is the reset cadence of a quest.
type QuestPeriod string

const (
	QuestPeriodDaily       QuestPeriod = "daily"
	QuestPeriodWeekly      QuestPeriod = "weekly"
	QuestPeriodAchievement QuestPeriod = "achievement"
)

// QuestReward is the XP/coin grant applied through the ledger on completion.
type QuestReward struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// Quest is a single generated quest instance.
type Quest struct {
	ID          uuid.UUID     `json:"id"`
	TemplateKey string        `json:"template_key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    QuestCategory `json:"category"`
	Period      QuestPeriod   `json:"period"`
	Target      float64       `json:"target"`
	Reward      QuestReward   `json:"reward"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// QuestSet is one generated daily or weekly set.
type QuestSet struct {
	LastResetAt *time.Time `json:"last_reset_at,omitempty"`
	Quests      []Quest    `json:"quests"`
}

// Find returns a pointer into the set for the given quest id, or nil.
func (s *QuestSet) Find(id uuid.UUID) *Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return &s.Quests[i]
		}
	}
	return nil
}

// QuestState is the full persisted quest snapshot: both periodic sets, the
// never-reset achievement list, and the shared progress map.
type QuestState struct {
	Daily        QuestSet              `json:"daily"`
	Weekly       QuestSet              `json:"weekly"`
	Achievements []Quest               `json:"achievements"`
	Progress     map[uuid.UUID]float64 `json:"progress"`
}

// QuestTemplate is a static pool entry quests are generated from.
type QuestTemplate struct {
	Key         string        `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    QuestCategory `json:"category"`
	Target      float64       `json:"target"`
	RewardXP    int           `json:"reward_xp"`
	RewardCoins int           `json:"reward_coins"`
}
