// Package dates resolves "today" boundaries for user timezones. The
// discipline engine only sees the Resolver interface, so a different
// boundary policy can be substituted without touching it.
package dates

import "time"

// FallbackTimezone is used when a user carries an unknown zone name.
const FallbackTimezone = "Asia/Kolkata"

// Resolver computes the half-open [start, end) instants of the current
// day for an IANA timezone.
type Resolver interface {
	Bounds(now time.Time, tz string) (start, end time.Time)
}

// LocationResolver resolves day bounds with the system timezone
// database, falling back to FallbackTimezone on unknown names.
type LocationResolver struct{}

// Bounds returns local midnight and the following local midnight. The
// end bound is a calendar day later, so DST transitions keep the day
// contiguous rather than 24 hours long.
func (LocationResolver) Bounds(now time.Time, tz string) (time.Time, time.Time) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, err = time.LoadLocation(FallbackTimezone)
		if err != nil {
			loc = time.UTC
		}
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole days from start to end, never negative.
func DaysBetween(start, end time.Time) int {
	d := int(end.Sub(start).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
