// Host-side monitor for targets that report their sample ticks over
// serial. Each report is one line, "tick <seq> <micros>", printed by the
// target's main loop (never by its interrupt handler).
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Tick is one sample report from the target: a sequence number and the
// target's microsecond timestamp when the report was drained.
type Tick struct {
	Seq    uint64
	Micros uint64
}

// ParseTick parses one "tick <seq> <micros>" report line.
func ParseTick(line string) (Tick, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "tick" {
		return Tick{}, fmt.Errorf("not a tick report: %q", line)
	}
	seq, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Tick{}, fmt.Errorf("bad sequence in %q: %w", line, err)
	}
	us, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Tick{}, fmt.Errorf("bad timestamp in %q: %w", line, err)
	}
	return Tick{Seq: seq, Micros: us}, nil
}

// Collector accumulates tick reports and derives interval statistics.
type Collector struct {
	count     int
	last      Tick
	intervals []float64 // microseconds between consecutive reports
	dropped   uint64    // sequence gaps
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add records one report. Out-of-order timestamps are kept but contribute
// a negative interval, which shows up in the summary rather than being
// silently discarded.
func (c *Collector) Add(t Tick) {
	if c.count > 0 {
		c.intervals = append(c.intervals, float64(t.Micros)-float64(c.last.Micros))
		if t.Seq > c.last.Seq+1 {
			c.dropped += t.Seq - c.last.Seq - 1
		}
	}
	c.last = t
	c.count++
}

// Count returns the number of reports recorded.
func (c *Collector) Count() int { return c.count }

// Dropped returns the number of reports lost to sequence gaps.
func (c *Collector) Dropped() uint64 { return c.dropped }

// Summary holds interval statistics over a collection window.
type Summary struct {
	Ticks    int
	Dropped  uint64
	MeanUs   float64
	StdDevUs float64
	MinUs    float64
	MaxUs    float64
}

// Summarize computes interval statistics for everything collected so far.
func (c *Collector) Summarize() Summary {
	s := Summary{Ticks: c.count, Dropped: c.dropped}
	if len(c.intervals) == 0 {
		return s
	}

	s.MeanUs, s.StdDevUs = stat.MeanStdDev(c.intervals, nil)
	if len(c.intervals) == 1 {
		s.StdDevUs = 0
	}

	s.MinUs, s.MaxUs = c.intervals[0], c.intervals[0]
	for _, v := range c.intervals[1:] {
		if v < s.MinUs {
			s.MinUs = v
		}
		if v > s.MaxUs {
			s.MaxUs = v
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("ticks %d (dropped %d), interval mean %.1fus stddev %.1fus min %.1fus max %.1fus",
		s.Ticks, s.Dropped, s.MeanUs, s.StdDevUs, s.MinUs, s.MaxUs)
}

// Collect streams report lines from r into c until max reports have been
// recorded (max <= 0 means until EOF). Lines that are not tick reports,
// such as boot messages, are skipped.
func Collect(r io.Reader, c *Collector, max int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		t, err := ParseTick(line)
		if err != nil {
			continue // boot banner or line noise
		}
		c.Add(t)
		if max > 0 && c.Count() >= max {
			return nil
		}
	}
	return scanner.Err()
}
