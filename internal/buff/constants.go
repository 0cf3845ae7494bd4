package buff

import "github.com/tdnguyen27/StudyPet_Go/internal/domain"

// Level-scaling multipliers. Buffs grow 1% per level capped at 1.19x;
// debuffs shrink 0.5% per level floored at 0.905x.
const (
	BuffGrowthPerLevel  = 0.01
	BuffMultiplierCap   = 1.19
	DebuffDecayPerLevel = 0.005
	DebuffMultiplierMin = 0.905
)

// Modifier vocabularies drawn from without replacement during generation.
var (
	buffKinds = []domain.ModifierKind{
		domain.ModifierXPBoost,
		domain.ModifierCoinBoost,
	}
	debuffKinds = []domain.ModifierKind{
		domain.ModifierXPPenalty,
		domain.ModifierCoinPenalty,
		domain.ModifierPriceIncrease,
		domain.ModifierLuckPenalty,
	}
)

// countRange is an inclusive [min, max] integer range.
type countRange struct {
	Min int
	Max int
}

// GenerationParams controls modifier generation for one rarity tier.
type GenerationParams struct {
	BuffCount       countRange
	DebuffCount     countRange
	BuffMagnitude   countRange
	DebuffMagnitude countRange
}

// Richer rarities get strictly more buffs, fewer debuffs and larger magnitudes.
var generationParams = map[domain.Rarity]GenerationParams{
	domain.RarityCommon: {
		BuffCount:       countRange{0, 1},
		DebuffCount:     countRange{1, 2},
		BuffMagnitude:   countRange{1, 3},
		DebuffMagnitude: countRange{2, 5},
	},
	domain.RarityRare: {
		BuffCount:       countRange{1, 2},
		DebuffCount:     countRange{1, 2},
		BuffMagnitude:   countRange{2, 5},
		DebuffMagnitude: countRange{2, 4},
	},
	domain.RarityEpic: {
		BuffCount:       countRange{1, 2},
		DebuffCount:     countRange{0, 1},
		BuffMagnitude:   countRange{4, 8},
		DebuffMagnitude: countRange{1, 3},
	},
	domain.RarityLegendary: {
		BuffCount:       countRange{2, 2},
		DebuffCount:     countRange{0, 1},
		BuffMagnitude:   countRange{6, 12},
		DebuffMagnitude: countRange{1, 2},
	},
	domain.RarityMythical: {
		BuffCount:       countRange{2, 2},
		DebuffCount:     countRange{0, 0},
		BuffMagnitude:   countRange{10, 16},
		DebuffMagnitude: countRange{0, 0},
	},
	domain.RaritySecret: {
		BuffCount:       countRange{2, 2},
		DebuffCount:     countRange{0, 0},
		BuffMagnitude:   countRange{15, 25},
		DebuffMagnitude: countRange{0, 0},
	},
}

// ParamsFor returns the generation parameters for a rarity, falling back to
// the common tier for unknown values.
func ParamsFor(r domain.Rarity) GenerationParams {
	if p, ok := generationParams[r]; ok {
		return p
	}
	return generationParams[domain.RarityCommon]
}
