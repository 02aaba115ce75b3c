package engine

import (
	"sync"
	"time"
)

// Task is a callback scheduled to run once after a delay.
// Cancel prevents a callback that has not started yet from running.
type Task struct {
	mu       sync.Mutex
	timer    Timer
	finished bool
}

// Schedule arms fn to run after d on s. fn receives the task that fired so
// owners can tell a current task from one they already replaced.
func Schedule(s Scheduler, d time.Duration, fn func(*Task)) *Task {
	t := &Task{}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.timer = s.AfterFunc(d, func() {
		t.mu.Lock()
		if t.finished {
			t.mu.Unlock()
			return
		}
		t.finished = true
		t.mu.Unlock()
		fn(t)
	})
	return t
}

// Cancel stops the task. It is safe to call more than once and on a nil task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.finished = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Done reports whether the task already ran or was cancelled.
func (t *Task) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}
