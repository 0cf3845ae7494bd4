// Package leveling converts the cumulative XP counter into level,
// current-level floor and next-level ceiling.
package leveling

import "github.com/tdnguyen27/StudyPet_Go/internal/domain"

// XPPerLevel is the flat width of every level band.
const XPPerLevel = 500

// Level returns floor(xp/500)+1 for non-negative xp.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// FloorXP returns the XP at which the given level starts.
func FloorXP(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) * XPPerLevel
}

// CeilingXP returns the XP at which the next level starts.
func CeilingXP(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// Apply recomputes the derived level fields from the stored XP.
func Apply(e *domain.EconomyState) {
	e.Level = Level(e.XP)
	e.LevelFloorXP = FloorXP(e.Level)
	e.LevelCeilingXP = CeilingXP(e.Level)
}
