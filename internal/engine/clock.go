package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used by the honoree view to determine "today".
type Clock interface {
	Now() time.Time
}

// Timer is a pending callback created by a Scheduler.
// Stop reports whether the call prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Scheduler runs a function once after a delay.
// Callbacks may run on any goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock implements Clock and Scheduler using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on a runtime timer.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
