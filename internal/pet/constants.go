package pet

// Pet growth tuning.
const (
	MaxLevel         = 20
	BaseExpForLevel  = 50
	ExpGrowthRate    = 1.5
	PlayBaseExp      = 10
	PlayExpPerLevel  = 0.5
	PlayEnergyCost   = 10
	PlayHungerGain   = 5
	HungerSlowdownAt = 50 // hunger above this halves play exp
	EnergySlowdownAt = 50 // energy below this halves play exp
	MinEnergy        = 0
	MaxEnergy        = 100
	MinHunger        = 0
	MaxHunger        = 100
)

// FavoriteMoodDurationMinutes is the fixed mood expiry a favorite food forces.
const FavoriteMoodDurationMinutes = 30

// Log message constants
const (
	LogMsgFeedCalled    = "Feed called"
	LogMsgPlayCalled    = "Play called"
	LogMsgPetLeveledUp  = "Pet leveled up"
	LogMsgMoodExpired   = "Pet mood expired"
	LogMsgBuffExpired   = "Pet special buff expired"
	LogMsgPetEquipped   = "Pet equipped"
	LogMsgPetUnequipped = "Pet unequipped"
	LogMsgPetDeleted    = "Pet deleted"
	LogMsgEnergyBoosted = "Equipped pets energy boosted"
)
