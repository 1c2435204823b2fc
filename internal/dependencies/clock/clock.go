package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// AfterFunc covers the round countdowns and reconnection grace timers,
// which must be cancellable and deterministic under test.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules f to run in its own goroutine after d.
	// The returned timer can be stopped before it fires.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled call
type Timer interface {
	// Stop cancels the timer. It reports whether the call was prevented
	// from firing.
	Stop() bool
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f via time.AfterFunc
func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
