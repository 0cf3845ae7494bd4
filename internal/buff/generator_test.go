package buff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
	"github.com/tdnguyen27/StudyPet_Go/internal/utils"
)

func TestGenerate_RespectsRarityRanges(t *testing.T) {
	rarities := []domain.Rarity{
		domain.RarityCommon,
		domain.RarityRare,
		domain.RarityEpic,
		domain.RarityLegendary,
		domain.RarityMythical,
		domain.RaritySecret,
	}

	gen := NewGenerator(utils.NewRandomSource(42))

	for _, rarity := range rarities {
		t.Run(string(rarity), func(t *testing.T) {
			params := ParamsFor(rarity)

			for i := 0; i < 200; i++ {
				buffs, debuffs := gen.Generate(rarity)

				assert.GreaterOrEqual(t, len(buffs), min(params.BuffCount.Min, len(buffKinds)))
				assert.LessOrEqual(t, len(buffs), params.BuffCount.Max)
				assert.GreaterOrEqual(t, len(debuffs), min(params.DebuffCount.Min, len(debuffKinds)))
				assert.LessOrEqual(t, len(debuffs), params.DebuffCount.Max)

				for kind, mag := range buffs {
					assert.Contains(t, buffKinds, kind)
					assert.GreaterOrEqual(t, mag, params.BuffMagnitude.Min)
					assert.LessOrEqual(t, mag, params.BuffMagnitude.Max)
				}
				for kind, mag := range debuffs {
					assert.Contains(t, debuffKinds, kind)
					assert.GreaterOrEqual(t, mag, params.DebuffMagnitude.Min)
					assert.LessOrEqual(t, mag, params.DebuffMagnitude.Max)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGenerator(utils.NewRandomSource(7))
	b := NewGenerator(utils.NewRandomSource(7))

	for i := 0; i < 50; i++ {
		buffsA, debuffsA := a.Generate(domain.RarityLegendary)
		buffsB, debuffsB := b.Generate(domain.RarityLegendary)
		require.Equal(t, buffsA, buffsB)
		require.Equal(t, debuffsA, debuffsB)
	}
}

func TestGenerate_SecretAlwaysTwoBuffsNoDebuffs(t *testing.T) {
	gen := NewGenerator(utils.NewRandomSource(1))

	for i := 0; i < 100; i++ {
		buffs, debuffs := gen.Generate(domain.RaritySecret)
		assert.Len(t, buffs, 2)
		assert.Empty(t, debuffs)
	}
}
