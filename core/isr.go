package core

// isrAdapter is the single handler bound to the timer's compare-match
// event. Only the interrupt-driven configure path constructs one, so a
// polled build contains no interrupt entry point at all.
type isrAdapter struct {
	irq     IRQController
	handler SampleHandler
}

// dispatch runs in interrupt context on every compare match. It suppresses
// nested delivery for the duration of the callback; the callback must not
// block or allocate and has to finish well inside one sample period, since
// it preempts the main program at an arbitrary instruction boundary.
func (a *isrAdapter) dispatch() {
	state := a.irq.Disable()
	a.handler.OnSampleTime()
	a.irq.Restore(state)
}
