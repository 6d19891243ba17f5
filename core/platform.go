// Platform capability table: which MCU/clock combinations the sample timer
// knows how to program, and the register values for each.
package core

import "time"

// The subsystem produces one fixed sample cadence. Every table entry below
// must resolve to exactly this period; other rates are out of scope.
const (
	SamplePeriod = 2 * time.Millisecond
	SampleRateHz = 500
)

// PlatformID identifies an MCU family whose sample timer the capability
// table covers. IDs are decided by the target build, never probed at
// runtime.
type PlatformID string

const (
	// PlatformATmega328 covers the ATmega328P/168/32U4/16U4 parts, which
	// share the same 16-bit Timer1.
	PlatformATmega328 PlatformID = "atmega328"

	// PlatformATtiny85 is the ATtiny85's Timer/Counter1.
	PlatformATtiny85 PlatformID = "attiny85"
)

// Platform pairs a platform family with the build's crystal frequency.
// Both come from the toolchain: the family from the target selection, the
// frequency from the clock configuration.
type Platform struct {
	ID      PlatformID
	ClockHz uint32
}

// RegisterConfig holds the derived timer register values for one platform
// and clock: the clock divider selector and the compare-match threshold.
// The resulting period is (Compare+1) * Prescaler / ClockHz.
type RegisterConfig struct {
	Prescaler uint16
	Compare   uint16
}

type platformKey struct {
	id      PlatformID
	clockHz uint32
}

// capabilityTable maps (platform, clock) to the timer values producing a
// 2ms compare match. Combinations not listed are unsupported; Lookup never
// guesses.
var capabilityTable = map[platformKey]RegisterConfig{
	{PlatformATmega328, 16000000}: {Prescaler: 256, Compare: 0x7C}, // 16MHz / 256 / 125 = 500Hz
	{PlatformATmega328, 8000000}:  {Prescaler: 64, Compare: 0xF9},  // 8MHz / 64 / 250 = 500Hz
	{PlatformATtiny85, 16000000}:  {Prescaler: 256, Compare: 0x7C},
	{PlatformATtiny85, 8000000}:   {Prescaler: 128, Compare: 0x7C},
}

// Lookup returns the timer configuration for the given platform family and
// clock frequency. ok is false when the combination is not in the table;
// the caller must then sample by polling instead.
func Lookup(id PlatformID, clockHz uint32) (RegisterConfig, bool) {
	cfg, ok := capabilityTable[platformKey{id, clockHz}]
	return cfg, ok
}
