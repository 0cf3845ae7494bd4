package buff

import (
	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

// Generator rolls modifier sets for freshly acquired pets.
type Generator struct {
	src utils.RandomSource
}

// NewGenerator creates a generator backed by the given random source.
func NewGenerator(src utils.RandomSource) *Generator {
	return &Generator{src: src}
}

// Generate rolls a buff map and a debuff map for the given rarity. Kinds are
// drawn without replacement from the fixed vocabularies; magnitudes are
// uniform integers from the rarity's ranges. The returned maps hold raw
// (level-1) magnitudes, which equal the scaled values at level 1.
func (g *Generator) Generate(rarity domain.Rarity) (buffs, debuffs map[domain.ModifierKind]int) {
	params := ParamsFor(rarity)

	buffs = g.roll(buffKinds, params.BuffCount, params.BuffMagnitude)
	debuffs = g.roll(debuffKinds, params.DebuffCount, params.DebuffMagnitude)
	return buffs, debuffs
}

func (g *Generator) roll(vocabulary []domain.ModifierKind, count, magnitude countRange) map[domain.ModifierKind]int {
	n := utils.UniformInt(g.src, count.Min, count.Max)
	if n > len(vocabulary) {
		n = len(vocabulary)
	}

	out := make(map[domain.ModifierKind]int, n)
	if n == 0 {
		return out
	}

	// Partial Fisher-Yates over a copy for without-replacement kind draws.
	pool := make([]domain.ModifierKind, len(vocabulary))
	copy(pool, vocabulary)
	for i := 0; i < n; i++ {
		j := i + g.src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out[pool[i]] = utils.UniformInt(g.src, magnitude.Min, magnitude.Max)
	}
	return out
}
