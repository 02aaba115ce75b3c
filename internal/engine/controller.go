package engine

import (
	"log/slog"
	"sync"

	"github.com/tartampluch/go-celebration/internal/config"
)

// State is an immutable snapshot of the celebration.
type State struct {
	Stage Stage

	// Count is the current countdown value. It is 0 before the countdown
	// starts and once it has finished.
	Count int

	// Revealed lists the countdown values that played their entrance
	// animation, in the order they were revealed.
	Revealed []int
}

// event is a queued notification: either a state change or an effect.
type event struct {
	state  *State
	effect *Effect
}

// Controller owns the celebration state machine and its two timers.
//
// All mutation happens under mu, so timer callbacks coming from runtime
// goroutines behave like a single cooperative loop. Observers are called
// outside the lock, in mutation order, and may call back into the
// controller.
type Controller struct {
	sched    Scheduler
	sink     EffectSink
	onChange func(State)
	log      *slog.Logger

	mu       sync.Mutex
	stage    Stage
	count    int
	reveal   *RevealTracker
	closed   bool
	outbox   []event
	draining bool

	countdownTask *Task
	ambientTask   *Task
	ambientFired  int
}

// NewController creates a controller in the initial stage.
// A nil scheduler falls back to RealClock. sink and onChange may be nil.
func NewController(sched Scheduler, sink EffectSink, onChange func(State)) *Controller {
	if sched == nil {
		sched = RealClock{}
	}
	return &Controller{
		sched:    sched,
		sink:     sink,
		onChange: onChange,
		log:      slog.With(config.LogKeyComponent, config.CompController),
		stage:    StageInitial,
		reveal:   NewRevealTracker(config.InitialCount),
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// BeginCelebration starts the countdown. It only has an effect in the
// initial stage; anywhere else it is ignored and returns false.
func (c *Controller) BeginCelebration() bool {
	c.mu.Lock()
	if c.closed || !c.stage.CanTransitionTo(StageCountdown) {
		stage := c.stage
		c.mu.Unlock()
		c.log.Debug(config.MsgBeginIgnored, config.LogKeyStage, stage)
		return false
	}
	c.enterStageLocked(StageCountdown)
	c.mu.Unlock()

	c.flush()
	return true
}

// Close cancels every pending timer. Callbacks that were already on their
// way are dropped. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.countdownTask.Cancel()
	c.ambientTask.Cancel()
	c.countdownTask, c.ambientTask = nil, nil
	stage, fired := c.stage, c.ambientFired
	c.mu.Unlock()

	c.log.Info(config.MsgControllerDown,
		config.LogKeyStage, stage,
		config.LogKeyFired, fired)
}

// enterStageLocked releases what the current stage owns and acquires what
// the next stage needs.
func (c *Controller) enterStageLocked(next Stage) {
	prev := c.stage
	c.exitStageLocked(prev)
	c.stage = next

	c.log.Info(config.MsgStageChanged,
		config.LogKeyFrom, prev,
		config.LogKeyTo, next)

	switch next {
	case StageCountdown:
		c.count = config.InitialCount
		c.reveal.Reset()
		c.enqueueStateLocked()
		c.scheduleTickLocked()
	case StageBirthday:
		c.count = 0
		c.enqueueStateLocked()
		c.startAmbientLocked()
	}
}

func (c *Controller) exitStageLocked(s Stage) {
	switch s {
	case StageCountdown:
		c.countdownTask.Cancel()
		c.countdownTask = nil
	case StageBirthday:
		c.ambientTask.Cancel()
		c.ambientTask = nil
	}
}

func (c *Controller) snapshotLocked() State {
	return State{
		Stage:    c.stage,
		Count:    c.count,
		Revealed: c.reveal.Values(),
	}
}

func (c *Controller) enqueueStateLocked() {
	st := c.snapshotLocked()
	c.outbox = append(c.outbox, event{state: &st})
}

func (c *Controller) enqueueEffectLocked(kind EffectKind, fx Effect) {
	fx.Kind = kind
	c.outbox = append(c.outbox, event{effect: &fx})
}

// flush delivers queued events. Only one goroutine drains at a time; a
// re-entrant or concurrent caller leaves its events to the active drainer.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	for len(c.outbox) > 0 {
		ev := c.outbox[0]
		c.outbox = c.outbox[1:]
		c.mu.Unlock()
		c.deliver(ev)
		c.mu.Lock()
	}
	c.draining = false
	c.mu.Unlock()
}

func (c *Controller) deliver(ev event) {
	switch {
	case ev.state != nil && c.onChange != nil:
		c.onChange(*ev.state)
	case ev.effect != nil && c.sink != nil:
		c.sink.Fire(*ev.effect)
	}
}
