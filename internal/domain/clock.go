package domain

import "time"

// Clock provides wall-clock time. Injected so tests can simulate day
// boundaries; streak arithmetic must read the date at call time, not a
// cached session start.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now
type SystemClock struct{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}
