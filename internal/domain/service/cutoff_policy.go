package service

import "time"

// DefaultCutoffHour is the local hour from which new payments are booked for the next
// business day.
const DefaultCutoffHour = 16

// CutoffPolicy decides same-day versus next-business-day scheduling.
type CutoffPolicy struct {
	hour     int
	location *time.Location
}

// NewCutoffPolicy returns a policy with the cutoff at hour:00:00 in loc. A nil loc means
// time.Local.
func NewCutoffPolicy(hour int, loc *time.Location) CutoffPolicy {
	if loc == nil {
		loc = time.Local
	}
	return CutoffPolicy{hour: hour, location: loc}
}

// IsPastCutoff reports whether now is at or after the cutoff on its own calendar day.
func (c CutoffPolicy) IsPastCutoff(now time.Time) bool {
	local := now.In(c.location)
	y, m, d := local.Date()
	cutoff := time.Date(y, m, d, c.hour, 0, 0, 0, c.location)
	return !local.Before(cutoff)
}

// Location returns the location the cutoff is evaluated in.
func (c CutoffPolicy) Location() *time.Location {
	return c.location
}
