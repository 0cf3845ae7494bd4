package domain

// GamificationState is the single persisted snapshot owning the economy,
// the pet collection, the gacha pity counter and the food inventory.
type GamificationState struct {
	Economy    EconomyState  `json:"economy"`
	Collection PetCollection `json:"collection"`
	Pity       PityState     `json:"pity"`
	Food       FoodInventory `json:"food"`
}

// NewGamificationState returns a zero-value snapshot with level fields set
// for 0 XP and an empty food inventory.
func NewGamificationState() *GamificationState {
	return &GamificationState{
		Economy: EconomyState{Level: 1, LevelCeilingXP: 500},
		Food:    FoodInventory{},
	}
}
