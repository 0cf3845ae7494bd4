package domain

// Event type names published on the in-process bus.
const (
	EventTypeEconomyDelta   = "economy.delta"
	EventTypeLevelUp        = "economy.level_up"
	EventTypePetAcquired    = "gacha.pet_acquired"
	EventTypePetLevelUp     = "pet.level_up"
	EventTypeQuestCompleted = "quest.completed"
	EventTypeQuestReset     = "quest.reset"
)
