//go:build tinygo

package core

import "runtime/interrupt"

// hardwareIRQ drives the MCU's global interrupt-enable flag.
type hardwareIRQ struct{}

func (hardwareIRQ) Disable() IRQState {
	return IRQState(interrupt.Disable())
}

func (hardwareIRQ) Restore(state IRQState) {
	interrupt.Restore(interrupt.State(state))
}

// DefaultIRQ returns the interrupt controller for this build.
func DefaultIRQ() IRQController { return hardwareIRQ{} }
