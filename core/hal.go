package core

// IRQState is the interrupt-enable state captured by IRQController.Disable.
// It is opaque to everything except the controller that produced it.
type IRQState uintptr

// IRQController disables and restores global interrupt delivery. Disable
// returns the prior state and Restore reinstates exactly that state, so
// nested disable/restore pairs compose correctly.
type IRQController interface {
	Disable() IRQState
	Restore(state IRQState)
}

// TimerDriver is the abstract sample-timer peripheral. Target code
// registers the real one; host builds register the simulator.
type TimerDriver interface {
	// Program writes the prescaler and compare registers. The sample timer
	// calls it with interrupt delivery already suppressed and only after a
	// successful capability lookup. It must not enable the compare-match
	// interrupt itself.
	Program(cfg RegisterConfig)

	// Arm enables the compare-match interrupt and routes every firing to
	// isr. Called inside the same critical section as Program, so the
	// interrupt context never observes a half-programmed timer.
	Arm(isr func())
}
