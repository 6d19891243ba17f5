package monitor

import (
	"math"
	"strings"
	"testing"
)

func TestParseTick(t *testing.T) {
	cases := []struct {
		line    string
		want    Tick
		wantErr bool
	}{
		{"tick 1 2000", Tick{Seq: 1, Micros: 2000}, false},
		{"tick 500 1000000", Tick{Seq: 500, Micros: 1000000}, false},
		{"tick", Tick{}, true},
		{"tick 1", Tick{}, true},
		{"tick one 2000", Tick{}, true},
		{"tick 1 soon", Tick{}, true},
		{"pulsetick atmega328 @ 16000000Hz", Tick{}, true},
		{"", Tick{}, true},
	}

	for _, tc := range cases {
		got, err := ParseTick(tc.line)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTick(%q) accepted, want error", tc.line)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTick(%q): %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTick(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestCollectorStatistics(t *testing.T) {
	c := NewCollector()
	for i := uint64(1); i <= 5; i++ {
		c.Add(Tick{Seq: i, Micros: i * 2000})
	}

	s := c.Summarize()
	if s.Ticks != 5 || s.Dropped != 0 {
		t.Errorf("ticks=%d dropped=%d, want 5/0", s.Ticks, s.Dropped)
	}
	if s.MeanUs != 2000 || s.StdDevUs != 0 {
		t.Errorf("mean=%f stddev=%f, want 2000/0", s.MeanUs, s.StdDevUs)
	}
	if s.MinUs != 2000 || s.MaxUs != 2000 {
		t.Errorf("min=%f max=%f, want 2000/2000", s.MinUs, s.MaxUs)
	}
	if !strings.Contains(s.String(), "ticks 5") {
		t.Errorf("Summary.String() = %q", s.String())
	}
}

func TestCollectorJitterAndGaps(t *testing.T) {
	c := NewCollector()
	c.Add(Tick{Seq: 1, Micros: 2000})
	c.Add(Tick{Seq: 2, Micros: 4100}) // 2100us interval
	c.Add(Tick{Seq: 5, Micros: 9900}) // gap of 2 reports

	s := c.Summarize()
	if s.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", s.Dropped)
	}
	if s.MinUs != 2100 || s.MaxUs != 5800 {
		t.Errorf("min=%f max=%f, want 2100/5800", s.MinUs, s.MaxUs)
	}
	wantMean := (2100.0 + 5800.0) / 2
	if math.Abs(s.MeanUs-wantMean) > 1e-9 {
		t.Errorf("mean = %f, want %f", s.MeanUs, wantMean)
	}
}

func TestCollectorEmpty(t *testing.T) {
	s := NewCollector().Summarize()
	if s.Ticks != 0 || s.MeanUs != 0 || s.MinUs != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestCollectSkipsNoise(t *testing.T) {
	input := strings.NewReader(
		"pulsetick atmega328 @ 16000000Hz\n" +
			"tick 1 2000\n" +
			"\n" +
			"garbage line\n" +
			"tick 2 4000\n" +
			"tick 3 6000\n")

	c := NewCollector()
	if err := Collect(input, c, 0); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if c.Count() != 3 {
		t.Errorf("collected %d reports, want 3", c.Count())
	}
}

func TestCollectStopsAtMax(t *testing.T) {
	input := strings.NewReader(
		"tick 1 2000\ntick 2 4000\ntick 3 6000\ntick 4 8000\n")

	c := NewCollector()
	if err := Collect(input, c, 2); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if c.Count() != 2 {
		t.Errorf("collected %d reports, want 2", c.Count())
	}
}
