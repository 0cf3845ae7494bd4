package buff

import (
	"math"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

// BuffMultiplier returns the level-scaling factor for buffs:
// min(1 + (level-1)*0.01, 1.19).
func BuffMultiplier(level int) float64 {
	m := 1 + float64(level-1)*BuffGrowthPerLevel
	return math.Min(m, BuffMultiplierCap)
}

// DebuffMultiplier returns the level-scaling factor for debuffs:
// max(1 - (level-1)*0.005, 0.905).
func DebuffMultiplier(level int) float64 {
	m := 1 - float64(level-1)*DebuffDecayPerLevel
	return math.Max(m, DebuffMultiplierMin)
}

// ScaleBuff scales a raw buff magnitude to the given level.
func ScaleBuff(raw, level int) int {
	return int(math.Floor(float64(raw) * BuffMultiplier(level)))
}

// ScaleDebuff scales a raw debuff magnitude to the given level.
func ScaleDebuff(raw, level int) int {
	return int(math.Floor(float64(raw) * DebuffMultiplier(level)))
}

// Rescale moves a pet's stored (already-scaled) modifier maps from oldLevel
// to newLevel. The approximate raw value is recovered by dividing out the old
// multiplier before the new one is applied, so repeated level-ups do not
// compound the scaling.
func Rescale(pet *domain.Pet, oldLevel, newLevel int) {
	if oldLevel == newLevel {
		return
	}

	oldBuff := BuffMultiplier(oldLevel)
	newBuff := BuffMultiplier(newLevel)
	for kind, scaled := range pet.Buffs {
		raw := float64(scaled) / oldBuff
		pet.Buffs[kind] = int(math.Floor(raw * newBuff))
	}

	oldDebuff := DebuffMultiplier(oldLevel)
	newDebuff := DebuffMultiplier(newLevel)
	for kind, scaled := range pet.Debuffs {
		raw := float64(scaled) / oldDebuff
		pet.Debuffs[kind] = int(math.Floor(raw * newDebuff))
	}
}
