package main

import (
	"flag"
	"fmt"
	"os"

	"pulsetick/sim"
)

var scenarioPath = flag.String("scenario", "scenario.yaml", "Scenario file (yaml)")

func main() {
	flag.Parse()

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := sim.Load(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rep, err := s.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("platform:        %s @ %dHz (%s)\n", s.Platform, s.ClockHz, s.Mode)
	fmt.Printf("configure:       %v (using interrupts: %v)\n", rep.Configured, rep.UsingInterrupts)
	fmt.Printf("register writes: %d\n", rep.Writes)
	fmt.Printf("compare matches: %d\n", rep.Matches)
	fmt.Printf("callbacks:       %d (lost %d)\n", rep.Invocations, rep.Matches-rep.Invocations)

	if !rep.Configured && s.Mode == "interrupts" {
		fmt.Println("unsupported platform/clock combination; the sampling engine must poll")
	}
}
