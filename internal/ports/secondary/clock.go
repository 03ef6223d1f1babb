package secondary

import "time"

// Clock abstracts wall-clock time so day-boundary logic is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with the real wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
