package core

// Critical is a scoped interrupt-disable region. EnterCritical suppresses
// interrupt delivery and captures the prior enable state; Exit reinstates
// that state rather than unconditionally re-enabling, so nested regions
// are safe. A Critical is a value, so taking one allocates nothing and it
// may be used on the interrupt path.
//
// Hardware does not queue timer firings: if a region is held for longer
// than one sample period, the compare matches that fall inside it collapse
// into at most one delivery when delivery resumes. That is the accepted
// latency bound of this subsystem, not a defect to work around.
type Critical struct {
	irq  IRQController
	prev IRQState
}

// EnterCritical disables interrupt delivery through irq and returns the
// region handle. Call Exit on every path out of the region.
func EnterCritical(irq IRQController) Critical {
	return Critical{irq: irq, prev: irq.Disable()}
}

// Exit restores the interrupt-enable state captured at entry.
func (c Critical) Exit() {
	c.irq.Restore(c.prev)
}
