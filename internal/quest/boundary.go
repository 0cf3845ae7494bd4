package quest

import "time"

// resetZone anchors every reset boundary to a fixed UTC+7 offset, independent
// of the host timezone.
var resetZone = time.FixedZone("UTC+7", 7*60*60)

// dailyBoundary returns the most recent 00:00 UTC+7 at or before t.
func dailyBoundary(t time.Time) time.Time {
	local := t.In(resetZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, resetZone)
}

// weeklyBoundary returns the most recent Monday 00:00 UTC+7 at or before t.
func weeklyBoundary(t time.Time) time.Time {
	day := dailyBoundary(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is the week anchor.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// shouldReset reports whether a new boundary has passed since the last reset.
// A missing last reset always resets.
func shouldReset(lastResetAt *time.Time, now time.Time, boundary func(time.Time) time.Time) bool {
	if lastResetAt == nil {
		return true
	}
	return boundary(*lastResetAt).Before(boundary(now))
}
