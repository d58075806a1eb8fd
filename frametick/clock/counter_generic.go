//go:build !amd64 && !arm64

package clock

import "time"

// Generic fallback counter backed by the OS clock. Less precise than the
// hardware counters but works everywhere.

// counterEpoch is the reference point for raw counter values.
var counterEpoch = time.Now()

// readCounter returns nanoseconds since the package epoch.
func readCounter() uint64 {
	return uint64(time.Since(counterEpoch).Nanoseconds())
}

// counterFrequencyHz returns 1 GHz: the generic counter already ticks in
// nanoseconds.
func counterFrequencyHz() uint64 {
	return 1_000_000_000
}

// counterName names the counter backend.
func counterName() string {
	return "time.Now"
}
