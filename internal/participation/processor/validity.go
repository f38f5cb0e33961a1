package processor

import (
	"time"

	"wheel-server/internal/calendar"
)

// ValidityWindow returns when a reward drawn at now becomes usable and when it stops being usable.
// The window opens at the start of the next local calendar day after now, in now's location, and
// lasts validityDays calendar days. Both bounds are day starts, so a zone transition that skips
// midnight moves them to the end of the gap rather than into the previous day.
// The same window applies to winning and non-winning draws.
func ValidityWindow(now time.Time, validityDays int) (validFrom, expiresAt time.Time) {
	y, m, d := now.Date()
	validFrom = calendar.StartOfDay(y, m, d+1, now.Location())
	expiresAt = calendar.StartOfDay(y, m, d+1+validityDays, now.Location())
	return validFrom, expiresAt
}
