package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyBoundary(t *testing.T) {
	// 01:30 in the reset zone maps to the same day's midnight.
	now := time.Date(2026, 3, 10, 1, 30, 0, 0, resetZone)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, resetZone), dailyBoundary(now))

	// 23:59 still belongs to the same day.
	now = time.Date(2026, 3, 10, 23, 59, 0, 0, resetZone)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, resetZone), dailyBoundary(now))

	// A UTC instant is translated into the zone before truncation. 18:00 UTC
	// is already 01:00 the next day in UTC+7.
	now = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, resetZone).Unix(), dailyBoundary(now).Unix())
}

func TestWeeklyBoundary(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, resetZone)

	// Any instant from Monday through Sunday maps to that Monday midnight.
	for day := 9; day <= 15; day++ {
		now := time.Date(2026, 3, day, 15, 0, 0, 0, resetZone)
		assert.Equal(t, monday, weeklyBoundary(now), "day=%d", day)
	}

	// The following Monday starts a new week.
	next := time.Date(2026, 3, 16, 0, 1, 0, 0, resetZone)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, resetZone), weeklyBoundary(next))
}

func TestShouldReset(t *testing.T) {
	t.Run("nil last reset always resets", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, resetZone)
		assert.True(t, shouldReset(nil, now, dailyBoundary))
	})

	t.Run("crossing midnight resets", func(t *testing.T) {
		last := time.Date(2026, 3, 9, 23, 59, 0, 0, resetZone)
		now := time.Date(2026, 3, 10, 0, 1, 0, 0, resetZone)
		assert.True(t, shouldReset(&last, now, dailyBoundary))
	})

	t.Run("same day does not reset", func(t *testing.T) {
		last := time.Date(2026, 3, 9, 0, 5, 0, 0, resetZone)
		now := time.Date(2026, 3, 9, 23, 58, 0, 0, resetZone)
		assert.False(t, shouldReset(&last, now, dailyBoundary))
	})

	t.Run("weekly resets only across the Monday boundary", func(t *testing.T) {
		sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, resetZone)
		monday := time.Date(2026, 3, 16, 1, 0, 0, 0, resetZone)
		midweekA := time.Date(2026, 3, 10, 9, 0, 0, 0, resetZone)
		midweekB := time.Date(2026, 3, 13, 9, 0, 0, 0, resetZone)

		assert.True(t, shouldReset(&sunday, monday, weeklyBoundary))
		assert.False(t, shouldReset(&midweekA, midweekB, weeklyBoundary))
	})
}
