//go:build avr && atmega328p

// Reference target: ATmega328 family parts (Uno-class boards). This
// package main is the one place in the build that selects the sampling
// mode; a polling build flips useInterrupts and changes nothing else.
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

var start time.Time

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	irq := core.DefaultIRQ()
	timer := core.New(buildMode(), core.Platform{
		ID:      core.PlatformATmega328,
		ClockHz: machine.CPUFrequency(),
	}, &timer1Driver{}, irq)

	engine := newTickReporter(irq)
	timer.Bind(engine)

	start = time.Now()
	println("pulsetick", string(core.PlatformATmega328), "@", machine.CPUFrequency(), "Hz")

	if !timer.Configure() {
		// Unlisted crystal: sample from our own loop instead.
		for {
			engine.OnSampleTime()
			engine.drain()
			time.Sleep(core.SamplePeriod)
		}
	}

	for {
		engine.drain()
		time.Sleep(10 * time.Millisecond)
	}
}
