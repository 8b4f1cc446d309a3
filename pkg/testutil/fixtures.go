package testutil

import (
	"sync"
	"time"
)

// Structurally valid account identifiers for deterministic testing.
const (
	TestDebtorIBAN   = "SE12ABCDE1234567890123"
	TestCreditorIBAN = "SE34ABCDE9876543210123"
	TestGermanIBAN   = "DE89370400440532013000"
)

// Fixed instants either side of the 16:00 same-day cutoff.
var (
	TestMorning   = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	TestAtCutoff  = time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)
	TestAfternoon = time.Date(2025, 3, 14, 17, 45, 0, 0, time.UTC)
)

// Clock is a settable time source safe for concurrent use.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a Clock frozen at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
