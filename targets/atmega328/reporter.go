//go:build avr && atmega328p

package main

import (
	"time"

	"pulsetick/core"
)

// tickReporter is a minimal sampling engine: the interrupt path only
// counts, and the main loop turns the count into "tick <seq> <micros>"
// report lines for the host monitor.
type tickReporter struct {
	irq      core.IRQController
	seq      uint32 // written in interrupt context, read under a guard
	reported uint32
}

func newTickReporter(irq core.IRQController) *tickReporter {
	return &tickReporter{irq: irq}
}

// OnSampleTime runs in interrupt context with delivery already suppressed
// by the dispatcher. Counting is all it may do here.
func (r *tickReporter) OnSampleTime() {
	r.seq++
}

// drain prints a report line for every tick since the last call. Runs in
// the main loop; the counter read takes a guard because the interrupt can
// preempt a multi-byte read on AVR.
func (r *tickReporter) drain() {
	c := core.EnterCritical(r.irq)
	seq := r.seq
	c.Exit()

	us := time.Since(start).Microseconds()
	for r.reported < seq {
		r.reported++
		println("tick", r.reported, us)
	}
}
