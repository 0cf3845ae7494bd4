package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		xp       int
		expected int
	}{
		{"zero xp is level 1", 0, 1},
		{"below first boundary", 499, 1},
		{"exactly first boundary", 500, 2},
		{"mid band", 1250, 3},
		{"high xp", 10_000, 21},
		{"negative xp clamps to level 1", -50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Level(tt.xp))
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("derived fields bracket the xp", func(t *testing.T) {
		for _, xp := range []int{0, 1, 499, 500, 501, 1250, 9999} {
			e := domain.EconomyState{XP: xp}
			Apply(&e)

			assert.Equal(t, Level(xp), e.Level)
			assert.LessOrEqual(t, e.LevelFloorXP, xp)
			assert.Less(t, xp, e.LevelCeilingXP)
			assert.Equal(t, e.LevelFloorXP+XPPerLevel, e.LevelCeilingXP)
		}
	})

	t.Run("boundary is inclusive on the floor", func(t *testing.T) {
		e := domain.EconomyState{XP: 500}
		Apply(&e)

		assert.Equal(t, 2, e.Level)
		assert.Equal(t, 500, e.LevelFloorXP)
		assert.Equal(t, 1000, e.LevelCeilingXP)
	})
}
