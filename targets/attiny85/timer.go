//go:build avr && attiny85

package main

import (
	"device/avr"
	"runtime/interrupt"

	"pulsetick/core"
)

var compareISR func()

func onTimer1Compare(interrupt.Interrupt) {
	if compareISR != nil {
		compareISR()
	}
}

// timer1Driver programs the ATtiny85's 8-bit Timer/Counter1 for clear-on-
// compare matches against OCR1C, with the interrupt taken from OCR1A.
type timer1Driver struct{}

// timer1ClockSelect maps a prescaler value to the CS13:CS10 nibble, which
// selects CK divided by 2^(n-1).
func timer1ClockSelect(prescaler uint16) uint8 {
	switch prescaler {
	case 128:
		return 0x08
	case 256:
		return 0x09
	}
	return 0
}

func (timer1Driver) Program(cfg core.RegisterConfig) {
	avr.GTCCR.Set(avr.GTCCR.Get() & 0x81) // drop PWM1B and the output compare pin connections
	avr.TCCR1.Set(avr.TCCR1_CTC1 | timer1ClockSelect(cfg.Prescaler))
	avr.OCR1C.Set(uint8(cfg.Compare)) // counter clears at the compare value
	avr.OCR1A.Set(uint8(cfg.Compare))
	avr.TCNT1.Set(0)
}

func (timer1Driver) Arm(isr func()) {
	compareISR = isr
	interrupt.New(avr.IRQ_TIMER1_COMPA, onTimer1Compare)
	avr.TIMSK.Set(avr.TIMSK.Get() | avr.TIMSK_OCIE1A) // Timer0 shares this register
}
