//go:build clock_tsc

package clock

import "time"

// Timestamp wraps a raw hardware counter reading. Conversion to
// nanoseconds goes through the shared process-wide calibration.
type Timestamp struct {
	ticks uint64
}

// Now captures the current counter value.
func Now() Timestamp {
	return Timestamp{ticks: readCounter()}
}

// DurationSince returns the elapsed time between earlier and ts.
// Returns zero instead of a negative duration if earlier is newer.
func (ts Timestamp) DurationSince(earlier Timestamp) time.Duration {
	return time.Duration(sharedCalibration().deltaNanos(earlier.ticks, ts.ticks))
}

// Nanos returns nanoseconds since the counter's own zero point.
// Only useful for relative comparisons against other Nanos values.
func (ts Timestamp) Nanos() uint64 {
	return sharedCalibration().deltaNanos(0, ts.ticks)
}

// Source names the active clock backend.
func Source() string {
	return counterName()
}
