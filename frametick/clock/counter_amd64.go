//go:build amd64

package clock

// rdtsc reads the CPU's Time Stamp Counter.
// Implemented in counter_amd64.s
func rdtsc() uint64

// readCounter returns the current raw counter value.
func readCounter() uint64 {
	return rdtsc()
}

// counterFrequencyHz returns 0: the TSC frequency varies across parts and
// power states, so amd64 relies on wall-clock calibration instead.
func counterFrequencyHz() uint64 {
	return 0
}

// counterName names the counter backend.
func counterName() string {
	return "rdtsc"
}
