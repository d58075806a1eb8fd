//go:build !clock_tsc && !clock_tscanchor

package clock

import (
	"sync"
	"time"
)

// Timestamp wraps the runtime monotonic clock.
type Timestamp struct {
	t time.Time
}

// Now captures the current time.
func Now() Timestamp {
	return Timestamp{t: time.Now()}
}

// DurationSince returns the elapsed time between earlier and ts.
// Returns zero instead of a negative duration if earlier is newer.
func (ts Timestamp) DurationSince(earlier Timestamp) time.Duration {
	d := ts.t.Sub(earlier.t)
	if d < 0 {
		return 0
	}
	return d
}

// reference is a process-wide instant captured on the first Nanos call.
// Timestamps taken before that call saturate to zero.
var (
	referenceOnce sync.Once
	reference     time.Time
)

// Nanos returns nanoseconds since a process-wide reference instant.
// Only useful for relative comparisons against other Nanos values.
func (ts Timestamp) Nanos() uint64 {
	referenceOnce.Do(func() {
		reference = time.Now()
	})
	d := ts.t.Sub(reference)
	if d < 0 {
		return 0
	}
	return uint64(d)
}

// Source names the active clock backend.
func Source() string {
	return "monotonic"
}
