// Simulated sample-timer hardware, used by tests and the scenario runner
// to exercise the trigger subsystem without an MCU.
package sim

import (
	"time"

	"pulsetick/core"
)

// Clock models the timer peripheral and global interrupt flag of an
// AVR-class MCU: a prescaled counter, a compare-match interrupt, and a
// single pending flag. It implements both core.TimerDriver and
// core.IRQController so one Clock stands in for the whole chip.
//
// Like the hardware, it does not queue compare matches. A match that
// occurs while delivery is suppressed sets the pending flag; further
// matches before delivery resumes are lost, and restoring delivery fires
// the handler at most once. Holding a critical section for longer than one
// sample period therefore drops ticks.
type Clock struct {
	clockHz uint32

	writes []core.RegisterConfig
	cfg    core.RegisterConfig
	isr    func()
	armed  bool

	cycles    uint64 // elapsed system clock cycles
	nextMatch uint64 // cycle of the next compare match, valid while armed
	disabled  bool   // global interrupt flag cleared
	pending   bool   // match seen while delivery was suppressed
	fired     uint64 // matches that occurred, delivered or not
}

// New returns a simulated MCU clocked at clockHz.
func New(clockHz uint32) *Clock {
	return &Clock{clockHz: clockHz}
}

// Program implements core.TimerDriver. It records the write and latches
// the compare configuration.
func (c *Clock) Program(cfg core.RegisterConfig) {
	c.writes = append(c.writes, cfg)
	c.cfg = cfg
}

// Arm implements core.TimerDriver. The first match falls one full period
// after arming, as on hardware that resets its counter during setup.
func (c *Clock) Arm(isr func()) {
	c.isr = isr
	c.armed = true
	c.nextMatch = c.cycles + c.periodCycles()
}

func (c *Clock) periodCycles() uint64 {
	return uint64(c.cfg.Compare+1) * uint64(c.cfg.Prescaler)
}

// Disable implements core.IRQController.
func (c *Clock) Disable() core.IRQState {
	prev := core.IRQState(0)
	if !c.disabled {
		prev = 1
	}
	c.disabled = true
	return prev
}

// Restore implements core.IRQController. Restoring an enabled state
// delivers at most one pending compare match; anything beyond that was
// lost while delivery was off.
func (c *Clock) Restore(state core.IRQState) {
	if state == 0 {
		return // still inside an outer critical section
	}
	c.disabled = false
	if c.pending && c.armed {
		c.pending = false
		c.isr()
	}
}

// Advance moves simulated time forward, firing compare matches as they
// fall due.
func (c *Clock) Advance(d time.Duration) {
	c.AdvanceCycles(uint64(d) * uint64(c.clockHz) / uint64(time.Second))
}

// AdvanceCycles steps the system clock by n cycles.
func (c *Clock) AdvanceCycles(n uint64) {
	target := c.cycles + n
	if !c.armed {
		c.cycles = target
		return
	}
	for c.nextMatch <= target {
		c.cycles = c.nextMatch
		c.fired++
		if c.disabled {
			c.pending = true // a second match before Restore is lost
		} else {
			c.isr()
		}
		c.nextMatch += c.periodCycles()
	}
	c.cycles = target
}

// Writes returns every register configuration the timer received.
func (c *Clock) Writes() []core.RegisterConfig { return c.writes }

// Armed reports whether the compare-match interrupt is enabled.
func (c *Clock) Armed() bool { return c.armed }

// Fired returns the number of compare matches that occurred, whether or
// not they were delivered.
func (c *Clock) Fired() uint64 { return c.fired }
