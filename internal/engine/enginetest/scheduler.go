// Package enginetest provides a deterministic scheduler for tests that
// drive the celebration controller without waiting on real time.
package enginetest

import (
	"sort"
	"sync"
	"time"

	"github.com/tartampluch/go-celebration/internal/engine"
)

// FakeScheduler implements engine.Scheduler and engine.Clock on a virtual
// timeline that only moves when Advance is called.
type FakeScheduler struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
	seq     int
	pending []*fakeTimer
}

// NewFakeScheduler returns a scheduler whose Now starts at start.
func NewFakeScheduler(start time.Time) *FakeScheduler {
	return &FakeScheduler{start: start}
}

type fakeTimer struct {
	s       *FakeScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

// Stop removes the timer. It reports false if it already fired or stopped.
func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}

// Now returns the virtual time.
func (f *FakeScheduler) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.start.Add(f.elapsed)
}

// Elapsed is the virtual time spent since creation.
func (f *FakeScheduler) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.elapsed
}

// AfterFunc registers fn to run once virtual time reaches now+d.
func (f *FakeScheduler) AfterFunc(d time.Duration, fn func()) engine.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{s: f, at: f.elapsed + d, seq: f.seq, fn: fn}
	f.pending = append(f.pending, t)
	return t
}

// Pending is the number of armed timers.
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Advance moves virtual time forward by d, running every timer that falls
// due in deadline order, including timers armed by those callbacks.
// Callbacks run on the caller's goroutine without the scheduler lock.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.elapsed + d

	for {
		sort.Slice(f.pending, func(i, j int) bool {
			if f.pending[i].at == f.pending[j].at {
				return f.pending[i].seq < f.pending[j].seq
			}
			return f.pending[i].at < f.pending[j].at
		})
		if len(f.pending) == 0 || f.pending[0].at > target {
			break
		}
		next := f.pending[0]
		f.pending = f.pending[1:]
		f.elapsed = next.at

		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	f.elapsed = target
	f.mu.Unlock()
}
