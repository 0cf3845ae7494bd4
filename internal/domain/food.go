package domain

// FoodSpecialBuff is the special-buff payload a favorite food installs on its
// species-matched pet.
type FoodSpecialBuff struct {
	ExpBoostPercent int  `json:"exp_boost_percent"`
	InfiniteEnergy  bool `json:"infinite_energy"`
	InfiniteHunger  bool `json:"infinite_hunger"`
	DurationMinutes int  `json:"duration_minutes"`
}

// Food is a static catalog entry for a purchasable food item.
type Food struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Cost                int              `json:"cost"`
	HungerReduction     int              `json:"hunger_reduction"`
	EnergyBoost         int              `json:"energy_boost"`
	Mood                Mood             `json:"mood"`
	MoodDurationMinutes int              `json:"mood_duration_minutes"`
	Cleanses            bool             `json:"cleanses,omitempty"`
	FavoriteOf          string           `json:"favorite_of,omitempty"` // species tag
	SpecialBuff         *FoodSpecialBuff `json:"special_buff,omitempty"`
}

// FoodInventory maps food id to owned unit count.
type FoodInventory map[string]int
