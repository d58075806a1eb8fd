//go:build clock_tscanchor && !clock_tsc

package clock

import "time"

// anchor pins a counter reading to the wall clock so a Timestamp can be
// converted to absolute nanoseconds without further calibration lookups.
type anchor struct {
	refTicks uint64
	refNanos uint64
}

// Timestamp wraps a raw hardware counter reading plus the anchor captured
// alongside it. On platforms without a usable cycle counter the generic
// counter backend already reads the OS clock, so no extra fallback is
// needed here.
type Timestamp struct {
	ticks uint64
	anc   anchor
}

// Now captures the current counter value and its wall-clock anchor.
func Now() Timestamp {
	t := readCounter()
	return Timestamp{
		ticks: t,
		anc: anchor{
			refTicks: t,
			refNanos: uint64(time.Now().UnixNano()),
		},
	}
}

// DurationSince returns the elapsed time between earlier and ts.
// Returns zero instead of a negative duration if earlier is newer.
func (ts Timestamp) DurationSince(earlier Timestamp) time.Duration {
	return time.Duration(sharedCalibration().deltaNanos(earlier.ticks, ts.ticks))
}

// Nanos returns absolute nanoseconds derived through the timestamp's anchor.
// Only useful for relative comparisons against other Nanos values.
func (ts Timestamp) Nanos() uint64 {
	return ts.anc.refNanos + sharedCalibration().deltaNanos(ts.anc.refTicks, ts.ticks)
}

// Source names the active clock backend.
func Source() string {
	return counterName() + "+anchor"
}
