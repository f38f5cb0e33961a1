// Package calendar resolves local calendar days to instants.
package calendar

import "time"

// StartOfDay returns the first instant of calendar day y-m-d in loc.
// Out of range values normalize the way time.Date does. When a zone
// transition skips local midnight the day starts at the end of the gap.
func StartOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	wantY, wantM, wantD := time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Date()

	t := time.Date(wantY, wantM, wantD, 0, 0, 0, 0, loc)
	for i := 0; i < 4; i++ {
		gotY, gotM, gotD := t.Date()
		if gotY == wantY && gotM == wantM && gotD == wantD {
			return t
		}
		if !sameOrBefore(gotY, gotM, gotD, wantY, wantM, wantD) {
			return t
		}
		_, end := t.ZoneBounds()
		if end.IsZero() || !end.After(t) {
			return t
		}
		t = end
	}
	return t
}

// DayStart returns the first instant of the calendar day containing t in t's location
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return StartOfDay(y, m, d, t.Location())
}

// NextDay returns the first instant of the calendar day after dayStart's
func NextDay(dayStart time.Time) time.Time {
	y, m, d := dayStart.Date()
	return StartOfDay(y, m, d+1, dayStart.Location())
}

func sameOrBefore(y1 int, m1 time.Month, d1, y2 int, m2 time.Month, d2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 <= d2
}
