//go:build avr && atmega328p

package main

import (
	"device/avr"
	"runtime/interrupt"

	"pulsetick/core"
)

// compareISR is the dispatch target installed by Arm. The hardware vector
// below is fixed at compile time, so it indirects through this binding
// instead of naming a handler symbol directly.
var compareISR func()

func onTimer1Compare(interrupt.Interrupt) {
	if compareISR != nil {
		compareISR()
	}
}

// timer1Driver programs the 16-bit Timer1 for CTC compare matches. It
// claims the timer outright; PWM on the OC1A/OC1B pins stops working.
type timer1Driver struct{}

// timer1ClockSelect maps a prescaler value to the CS12:CS10 bits.
func timer1ClockSelect(prescaler uint16) uint8 {
	switch prescaler {
	case 1:
		return avr.TCCR1B_CS10
	case 8:
		return avr.TCCR1B_CS11
	case 64:
		return avr.TCCR1B_CS11 | avr.TCCR1B_CS10
	case 256:
		return avr.TCCR1B_CS12
	case 1024:
		return avr.TCCR1B_CS12 | avr.TCCR1B_CS10
	}
	return 0
}

func (timer1Driver) Program(cfg core.RegisterConfig) {
	avr.TCCR1A.Set(0) // no output compare pins, no PWM
	avr.TCCR1C.Set(0) // no forced compare
	avr.TCCR1B.Set(avr.TCCR1B_WGM12 | timer1ClockSelect(cfg.Prescaler)) // CTC mode
	avr.OCR1AH.Set(uint8(cfg.Compare >> 8))
	avr.OCR1AL.Set(uint8(cfg.Compare))
	avr.TCNT1H.Set(0)
	avr.TCNT1L.Set(0)
}

func (timer1Driver) Arm(isr func()) {
	compareISR = isr
	interrupt.New(avr.IRQ_TIMER1_COMPA, onTimer1Compare)
	avr.TIMSK1.Set(avr.TIMSK1_OCIE1A)
}
