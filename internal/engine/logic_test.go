package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStage_CanTransitionTo verifies the forward-only stage graph.
func TestStage_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Stage
		allowed  bool
	}{
		{StageInitial, StageCountdown, true},
		{StageInitial, StageBirthday, false},
		{StageInitial, StageInitial, false},
		{StageCountdown, StageBirthday, true},
		{StageCountdown, StageInitial, false},
		{StageCountdown, StageCountdown, false},
		{StageBirthday, StageInitial, false},
		{StageBirthday, StageCountdown, false},
		{StageBirthday, StageBirthday, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRevealTracker_Observe(t *testing.T) {
	r := NewRevealTracker(3)

	assert.True(t, r.Observe(3))
	assert.True(t, r.Observe(2))
	assert.False(t, r.Observe(3), "Duplicates are ignored")
	assert.False(t, r.Observe(0), "Zero is never revealed")
	assert.False(t, r.Observe(4), "Values above the initial count are rejected")
	assert.False(t, r.Observe(-1))
	assert.True(t, r.Observe(1))

	assert.Equal(t, []int{3, 2, 1}, r.Values(), "Insertion order follows the countdown")
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Has(2))
	assert.False(t, r.Has(0))
}

func TestRevealTracker_ResetAndCopy(t *testing.T) {
	r := NewRevealTracker(3)
	r.Observe(3)

	values := r.Values()
	values[0] = 99
	assert.Equal(t, []int{3}, r.Values(), "Values must return a copy")

	r.Reset()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Values())
	assert.True(t, r.Observe(3), "A reset tracker accepts values again")
}

func TestSchedule_RealClock(t *testing.T) {
	var fired, cancelled atomic.Bool

	Schedule(RealClock{}, 10*time.Millisecond, func(*Task) { fired.Store(true) })
	task := Schedule(RealClock{}, 20*time.Millisecond, func(*Task) { cancelled.Store(true) })
	task.Cancel()
	task.Cancel() // idempotent

	require.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, cancelled.Load(), "A cancelled task must never run")
	assert.True(t, task.Done())
}

func TestTask_CancelNil(t *testing.T) {
	var task *Task
	assert.NotPanics(t, task.Cancel)
}
