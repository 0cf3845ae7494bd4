package domain

// EconomyState is the running XP/coin ledger for a user. Level fields are
// derived from XP and must be recomputed after every mutation.
type EconomyState struct {
	XP             int `json:"xp"`
	Coins          int `json:"coins"`
	Level          int `json:"level"`
	LevelFloorXP   int `json:"level_floor_xp"`
	LevelCeilingXP int `json:"level_ceiling_xp"`
}

// Delta reason tags recorded with every ledger application.
const (
	ReasonTaskCompleted   = "task_completed"
	ReasonTaskUncompleted = "task_uncompleted"
	ReasonFocusSession    = "focus_session"
	ReasonQuestReward     = "quest_reward"
	ReasonGachaSpin       = "gacha_spin"
	ReasonFoodPurchase    = "food_purchase"
)

// Fixed rewards for task events. Uncompleting a task applies the exact negation.
const (
	TaskRewardXP    = 60
	TaskRewardCoins = 12
)

// ModifierTotals is the combined percentage modifier set summed across all
// equipped pets, already level-scaled.
type ModifierTotals struct {
	XPBoost     int
	XPPenalty   int
	CoinBoost   int
	CoinPenalty int
}
