package domain

import "time"

// Clock supplies the current time. Injected wherever a default derives from
// "now" (today's date, the current hour for a conversion draft) so that
// those defaults are deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }
