package engine

import (
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/particle"
)

// scheduleTickLocked arms the next one-second decrement.
func (c *Controller) scheduleTickLocked() {
	c.countdownTask = Schedule(c.sched, config.TickInterval, c.tick)
}

// tick decrements the countdown. The value being left is recorded in the
// reveal tracker first. Reaching zero moves the page to the birthday stage
// and fires the celebration burst.
func (c *Controller) tick(t *Task) {
	c.mu.Lock()
	if c.closed || c.stage != StageCountdown || c.countdownTask != t {
		c.mu.Unlock()
		c.log.Debug(config.MsgStaleCallback, config.LogKeyComponent, config.CompCountdown)
		return
	}
	c.countdownTask = nil

	if c.reveal.Observe(c.count) {
		c.log.Debug(config.MsgValueRevealed, config.LogKeyValue, c.count)
	}
	c.count--
	c.log.Debug(config.MsgCountdownTick,
		config.LogKeyCount, c.count,
		config.LogKeyRevealed, c.reveal.Values())
	c.enqueueStateLocked()

	if c.count > 0 {
		c.scheduleTickLocked()
	} else {
		c.enqueueEffectLocked(EffectCelebration, Effect{Bursts: particle.Celebration()})
		c.enterStageLocked(StageBirthday)
	}
	c.mu.Unlock()

	c.flush()
}
