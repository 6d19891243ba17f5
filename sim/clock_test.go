package sim

import (
	"testing"
	"time"

	"pulsetick/core"
)

func armCounting(c *Clock, cfg core.RegisterConfig) *uint64 {
	var n uint64
	c.Program(cfg)
	c.Arm(func() { n++ })
	return &n
}

func TestClockFiresAtComparePeriod(t *testing.T) {
	cases := []struct {
		name    string
		clockHz uint32
		cfg     core.RegisterConfig
	}{
		{"16MHz prescaler 256", 16000000, core.RegisterConfig{Prescaler: 256, Compare: 0x7C}},
		{"8MHz prescaler 64", 8000000, core.RegisterConfig{Prescaler: 64, Compare: 0xF9}},
		{"8MHz prescaler 128", 8000000, core.RegisterConfig{Prescaler: 128, Compare: 0x7C}},
	}

	for _, tc := range cases {
		clk := New(tc.clockHz)
		n := armCounting(clk, tc.cfg)

		clk.Advance(time.Second)

		if *n != 500 {
			t.Errorf("%s: %d deliveries over 1s, want 500", tc.name, *n)
		}
		if clk.Fired() != 500 {
			t.Errorf("%s: %d matches over 1s, want 500", tc.name, clk.Fired())
		}
	}
}

func TestClockAccumulatesPartialAdvances(t *testing.T) {
	clk := New(16000000)
	n := armCounting(clk, core.RegisterConfig{Prescaler: 256, Compare: 0x7C})

	// Neither step crosses the 2ms match on its own.
	clk.Advance(1500 * time.Microsecond)
	if *n != 0 {
		t.Fatalf("match fired after 1.5ms")
	}
	clk.Advance(700 * time.Microsecond)
	if *n != 1 {
		t.Errorf("%d matches after 2.2ms, want 1", *n)
	}
}

func TestClockDoesNotQueueSuppressedMatches(t *testing.T) {
	clk := New(16000000)
	n := armCounting(clk, core.RegisterConfig{Prescaler: 256, Compare: 0x7C})

	state := clk.Disable()
	clk.Advance(7 * time.Millisecond) // matches at 2, 4 and 6ms
	if *n != 0 {
		t.Fatalf("%d deliveries while suppressed, want 0", *n)
	}
	if clk.Fired() != 3 {
		t.Fatalf("%d matches while suppressed, want 3", clk.Fired())
	}

	clk.Restore(state)
	if *n != 1 {
		t.Errorf("%d deliveries after restore, want exactly 1 (no queuing)", *n)
	}
}

func TestClockNestedDisable(t *testing.T) {
	clk := New(16000000)
	n := armCounting(clk, core.RegisterConfig{Prescaler: 256, Compare: 0x7C})

	outer := clk.Disable()
	inner := clk.Disable()
	clk.Advance(3 * time.Millisecond)

	clk.Restore(inner)
	if *n != 0 {
		t.Fatal("inner restore delivered while the outer region was held")
	}
	clk.Restore(outer)
	if *n != 1 {
		t.Errorf("%d deliveries after outer restore, want 1", *n)
	}
}

func TestClockUnarmedAdvance(t *testing.T) {
	clk := New(16000000)
	clk.Advance(time.Second)

	if clk.Fired() != 0 {
		t.Errorf("unarmed clock produced %d matches", clk.Fired())
	}
	if clk.Armed() {
		t.Error("clock reports armed without Arm")
	}
	if len(clk.Writes()) != 0 {
		t.Errorf("unarmed clock recorded %d writes", len(clk.Writes()))
	}
}

func TestClockRecordsWrites(t *testing.T) {
	clk := New(8000000)
	cfg := core.RegisterConfig{Prescaler: 64, Compare: 0xF9}
	clk.Program(cfg)

	writes := clk.Writes()
	if len(writes) != 1 || writes[0] != cfg {
		t.Errorf("Writes() = %+v, want [%+v]", writes, cfg)
	}
}
