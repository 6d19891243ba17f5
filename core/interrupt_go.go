//go:build !tinygo

package core

// noIRQ stands in for the hardware interrupt controller on regular Go
// builds, where there is no global interrupt flag to toggle. Tests inject
// a simulated controller instead of relying on this one.
type noIRQ struct{}

func (noIRQ) Disable() IRQState { return 0 }
func (noIRQ) Restore(IRQState)  {}

// DefaultIRQ returns the interrupt controller for this build.
func DefaultIRQ() IRQController { return noIRQ{} }
