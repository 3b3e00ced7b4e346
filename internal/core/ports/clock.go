package ports

import "time"

// Clock supplies current time for timestamps and for the stale-hold
// sweep's elapsed-time computation. Injectable so tests can freeze time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock reading the system time in UTC.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
