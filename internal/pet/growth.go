package pet

import (
	"math"

	"github.com/tdnguyen27/StudyPet_Go/internal/buff"
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

// ExpForLevel returns the experience required to advance from level L to L+1:
// floor(50 * 1.5^(L-1)). At the level cap the requirement is 0.
func ExpForLevel(level int) int {
	if level >= MaxLevel {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseExpForLevel * math.Pow(ExpGrowthRate, float64(level-1))))
}

// gainExp adds exp to the pet, resolving compound level-ups and re-scaling
// the stored modifier maps when the level changes. Returns levels gained.
func gainExp(p *domain.Pet, exp int) int {
	oldLevel := p.Level
	p.Exp += exp

	for p.Level < MaxLevel && p.Exp >= ExpForLevel(p.Level) {
		p.Exp -= ExpForLevel(p.Level)
		p.Level++
	}
	if p.Level >= MaxLevel {
		// Exp pins at 0 once the cap is reached.
		p.Level = MaxLevel
		p.Exp = 0
	}
	p.ExpForNextLevel = ExpForLevel(p.Level)

	if p.Level != oldLevel {
		buff.Rescale(p, oldLevel, p.Level)
	}
	return p.Level - oldLevel
}
