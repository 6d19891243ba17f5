package main

import (
	"flag"
	"fmt"
	"os"

	"pulsetick/host/monitor"
	"pulsetick/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	count  = flag.Int("count", 2500, "Tick reports to collect (0 = until EOF)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Collecting %d tick reports from %s...\n", *count, *device)

	col := monitor.NewCollector()
	if err := monitor.Collect(port, col, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed after %d reports: %v\n", col.Count(), err)
		os.Exit(1)
	}

	s := col.Summarize()
	fmt.Printf("ticks:    %d (dropped %d)\n", s.Ticks, s.Dropped)
	fmt.Printf("interval: mean %.1fus  stddev %.1fus  min %.1fus  max %.1fus\n",
		s.MeanUs, s.StdDevUs, s.MinUs, s.MaxUs)
}
