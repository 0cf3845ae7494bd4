package quest

// Generated set sizes: one guaranteed quest plus pool picks.
const (
	DailyPoolPicks  = 4
	WeeklyPoolPicks = 9
)

// Log message constants
const (
	LogMsgQuestCompleted      = "Quest completed"
	LogMsgQuestProgress       = "Quest progress updated"
	LogMsgDailyReset          = "Daily quest set reset"
	LogMsgWeeklyReset         = "Weekly quest set reset"
	LogMsgRewardGrantFailed   = "Failed to grant quest reward"
	LogMsgPersistWarning      = "Failed to persist quest state, continuing with in-memory snapshot"
	LogMsgReportCategoryEvent = "Category event reported"
)
