// Sample timer: the mode selection, callback binding and hardware setup
// for the fixed-rate sampling trigger.
package core

// SampleHandler is the capability the sampling engine hands to the timer:
// one no-argument notification per sample period. OnSampleTime may be
// invoked from interrupt context and must not block or allocate.
type SampleHandler interface {
	OnSampleTime()
}

// Mode selects how samples are triggered. It is fixed when the SampleTimer
// is constructed; the top-level application makes that choice exactly once
// per build.
type Mode uint8

const (
	// ModePolled leaves timing to the caller's own loop. No hardware is
	// touched and no interrupt handler exists in the build.
	ModePolled Mode = iota

	// ModeInterruptDriven programs the hardware timer to invoke the bound
	// callback every SamplePeriod.
	ModeInterruptDriven
)

func (m Mode) String() string {
	switch m {
	case ModePolled:
		return "polled"
	case ModeInterruptDriven:
		return "interrupt-driven"
	}
	return "unknown"
}

// SampleTimer owns the sampling trigger for one build: the selected mode,
// the target platform, the timer driver and the callback binding. The
// application constructs exactly one and injects it where needed; the
// interrupt context reaches shared state only through it, never through
// package globals.
type SampleTimer struct {
	mode     Mode
	platform Platform
	drv      TimerDriver
	irq      IRQController

	handler    SampleHandler
	configured bool
	armed      bool
	supported  bool
}

// New creates the sample timer for this build. mode and p are compile-time
// decisions made by the target code; drv and irq are that target's
// hardware bindings (or the simulator on a host build).
func New(mode Mode, p Platform, drv TimerDriver, irq IRQController) *SampleTimer {
	return &SampleTimer{mode: mode, platform: p, drv: drv, irq: irq}
}

// Bind registers the sampling engine's callback target. The engine calls
// it once, during its own initialization, before Configure arms the timer.
// Once armed the interrupt handler has captured its target, so a late Bind
// is refused; the handler can never observe a half-updated binding.
func (t *SampleTimer) Bind(h SampleHandler) bool {
	if t.armed {
		return false
	}
	c := EnterCritical(t.irq)
	t.handler = h
	c.Exit()
	return true
}

// Configure performs the hardware setup for the mode selected at
// construction and reports whether sampling is in place.
//
// In polled mode it touches no hardware and always succeeds. In
// interrupt-driven mode it consults the capability table: on a hit it
// programs and arms the timer inside a single critical section, so the
// interrupt context never sees a partially written configuration; on a
// miss it performs no register writes and returns false, and the caller
// must fall back to software polling. A false return is the expected
// outcome for unsupported hardware, not an error.
//
// The first call decides the subsystem's terminal state; repeat calls
// return the same result without touching hardware again.
func (t *SampleTimer) Configure() bool {
	if t.configured {
		return t.mode == ModePolled || t.supported
	}
	t.configured = true

	if t.mode == ModePolled {
		return true
	}
	if t.handler == nil {
		// Arming without a binding would give the interrupt handler an
		// undefined target. Refuse and leave the hardware untouched.
		return false
	}

	cfg, ok := Lookup(t.platform.ID, t.platform.ClockHz)
	if !ok {
		return false
	}

	adapter := &isrAdapter{irq: t.irq, handler: t.handler}

	c := EnterCritical(t.irq)
	t.drv.Program(cfg)
	t.drv.Arm(adapter.dispatch)
	t.armed = true
	t.supported = true
	c.Exit()
	return true
}

// UsingInterrupts reports whether samples arrive through the interrupt
// handler. Collaborators use it to choose between running their own timing
// loop and waiting for callbacks. It is false until Configure has run, and
// stays false in polled and unsupported builds.
func (t *SampleTimer) UsingInterrupts() bool {
	return t.armed
}

// Configured reports whether Configure has run.
func (t *SampleTimer) Configured() bool { return t.configured }
