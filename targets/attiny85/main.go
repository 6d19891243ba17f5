//go:build avr && attiny85

// Reference target: ATtiny85. There is no UART here, so the sampling
// engine is a heartbeat: an LED toggles every quarter second of delivered
// ticks, which makes a dead timer visible at a glance.
package main

import (
	"machine"
	"time"

	"pulsetick/core"
)

// Build-time mode switch.
const useInterrupts = true

func buildMode() core.Mode {
	if useInterrupts {
		return core.ModeInterruptDriven
	}
	return core.ModePolled
}

// heartbeat divides the 500Hz trigger down to a visible blink.
type heartbeat struct {
	pin   machine.Pin
	ticks uint16
}

func (h *heartbeat) OnSampleTime() {
	h.ticks++
	if h.ticks == core.SampleRateHz/4 {
		h.ticks = 0
		h.pin.Set(!h.pin.Get())
	}
}

func main() {
	led := machine.Pin(1) // PB1
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	timer := core.New(buildMode(), core.Platform{
		ID:      core.PlatformATtiny85,
		ClockHz: machine.CPUFrequency(),
	}, &timer1Driver{}, core.DefaultIRQ())

	engine := &heartbeat{pin: led}
	timer.Bind(engine)

	if !timer.Configure() {
		for {
			engine.OnSampleTime()
			time.Sleep(core.SamplePeriod)
		}
	}

	for {
		time.Sleep(time.Second)
	}
}
