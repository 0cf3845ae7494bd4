package economy

// Focus-session reward tuning. The multiplier rewards longer sessions and is
// capped at 5x.
const (
	FocusXPPerMinute      = 1.0
	FocusCoinsPerMinute   = 0.2
	FocusMultiplierGrowth = 2.0 // extra multiplier per hour of focus
	FocusMultiplierCap    = 5.0
	FocusEnergyPerMinutes = 5  // one energy point per this many minutes
	FocusEnergyCap        = 10 // max energy granted per session
)

// Log message constants
const (
	LogMsgApplyDeltaCalled   = "ApplyDelta called"
	LogMsgTaskCompleted      = "Task reward applied"
	LogMsgTaskUncompleted    = "Task reward reverted"
	LogMsgFocusSessionReward = "Focus session reward applied"
	LogMsgFoodPurchased      = "Food purchased"
)
