package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rarity is the ordered pet classification controlling modifier generation
// ranges and gacha draw weight.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
	RaritySecret    Rarity = "secret"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityEpic:      2,
	RarityLegendary: 3,
	RarityMythical:  4,
	RaritySecret:    5,
}

// Rank returns the power ordering of a rarity (common lowest). Unknown
// rarities rank below common.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return -1
}

// AtLeast reports whether r is the same tier as other or a richer one.
func (r Rarity) AtLeast(other Rarity) bool {
	return r.Rank() >= other.Rank()
}

// ModifierKind identifies a buff or debuff percentage modifier.
type ModifierKind string

const (
	ModifierXPBoost       ModifierKind = "xpBoost"
	ModifierCoinBoost     ModifierKind = "coinBoost"
	ModifierXPPenalty     ModifierKind = "xpPenalty"
	ModifierCoinPenalty   ModifierKind = "coinPenalty"
	ModifierPriceIncrease ModifierKind = "priceIncrease"
	ModifierLuckPenalty   ModifierKind = "luckPenalty"
)

// Mood is a named, time-limited pet state scaling experience gained from play.
type Mood string

const (
	MoodEcstatic  Mood = "ecstatic"
	MoodExcited   Mood = "excited"
	MoodHappy     Mood = "happy"
	MoodContent   Mood = "content"
	MoodSad       Mood = "sad"
	MoodAngry     Mood = "angry"
	MoodDepressed Mood = "depressed"
)

var moodExpMultiplier = map[Mood]float64{
	MoodEcstatic:  2.00,
	MoodExcited:   1.50,
	MoodHappy:     1.25,
	MoodContent:   1.00,
	MoodSad:       0.75,
	MoodAngry:     0.50,
	MoodDepressed: 0.25,
}

// ExpMultiplier returns the play-experience multiplier for the mood.
// Unknown moods behave as content.
func (m Mood) ExpMultiplier() float64 {
	if mult, ok := moodExpMultiplier[m]; ok {
		return mult
	}
	return 1.0
}

// SpecialBuff is a temporary favorite-food bonus attached to a pet.
type SpecialBuff struct {
	ExpBoostPercent int       `json:"exp_boost_percent"`
	InfiniteEnergy  bool      `json:"infinite_energy"`
	InfiniteHunger  bool      `json:"infinite_hunger"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// Pet is a single owned pet. Buff/debuff maps hold values already scaled to
// the pet's current level.
type Pet struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Species         string               `json:"species"`
	Rarity          Rarity               `json:"rarity"`
	Level           int                  `json:"level"`
	Exp             int                  `json:"exp"`
	ExpForNextLevel int                  `json:"exp_for_next_level"`
	Buffs           map[ModifierKind]int `json:"buffs"`
	Debuffs         map[ModifierKind]int `json:"debuffs"`
	Energy          int                  `json:"energy"`
	Hunger          int                  `json:"hunger"`
	Mood            Mood                 `json:"mood"`
	MoodExpiresAt   *time.Time           `json:"mood_expires_at,omitempty"`
	SpecialBuff     *SpecialBuff         `json:"special_buff,omitempty"`
}

// MaxEquippedPets bounds the equipped set.
const MaxEquippedPets = 3

// PetCollection is the full list of owned pets plus the ordered equipped set.
type PetCollection struct {
	Pets     []Pet       `json:"pets"`
	Equipped []uuid.UUID `json:"equipped"`
}

// Find returns a pointer into the collection for the given pet id, or nil.
func (c *PetCollection) Find(id uuid.UUID) *Pet {
	for i := range c.Pets {
		if c.Pets[i].ID == id {
			return &c.Pets[i]
		}
	}
	return nil
}

// IsEquipped reports whether the pet id is in the equipped set.
func (c *PetCollection) IsEquipped(id uuid.UUID) bool {
	for _, e := range c.Equipped {
		if e == id {
			return true
		}
	}
	return false
}

// EquippedPets returns the equipped pets in equip order. Ids without a
// matching pet are skipped.
func (c *PetCollection) EquippedPets() []*Pet {
	pets := make([]*Pet, 0, len(c.Equipped))
	for _, id := range c.Equipped {
		if p := c.Find(id); p != nil {
			pets = append(pets, p)
		}
	}
	return pets
}

// PityState counts consecutive sub-rare gacha results since the last
// rare-or-above result.
type PityState struct {
	Counter int `json:"counter"`
}
