package engine

import (
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/particle"
)

// startAmbientLocked fires the entry pair and arms the repeating emission.
func (c *Controller) startAmbientLocked() {
	c.ambientFired = 1
	c.enqueueEffectLocked(EffectEntry, Effect{Bursts: particle.EntryPair()})
	c.scheduleAmbientLocked()
}

func (c *Controller) scheduleAmbientLocked() {
	c.ambientTask = Schedule(c.sched, config.AmbientInterval, c.ambientTick)
}

// ambientTick fires the lighter pair and re-arms itself while the birthday
// stage lasts.
func (c *Controller) ambientTick(t *Task) {
	c.mu.Lock()
	if c.closed || c.stage != StageBirthday || c.ambientTask != t {
		c.mu.Unlock()
		c.log.Debug(config.MsgStaleCallback, config.LogKeyComponent, config.CompAmbient)
		return
	}
	c.ambientFired++
	c.enqueueEffectLocked(EffectAmbient, Effect{Bursts: particle.AmbientPair()})
	c.scheduleAmbientLocked()
	fired := c.ambientFired
	c.mu.Unlock()

	c.log.Debug(config.MsgAmbientFired, config.LogKeyFired, fired)
	c.flush()
}
