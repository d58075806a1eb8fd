// Package frametick measures elapsed time between successive frames of a
// host loop, derives instantaneous and rolling-average frame statistics,
// and can throttle the loop to a target frame rate with spin or hybrid
// sleep/spin waiting. It never spawns goroutines or owns the loop; the
// host drives it by calling Tick once per iteration.
package frametick

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/frametick/go-frametick/frametick/clock"
)

// DefaultFrameRate seeds a FrameCounter created with Default.
const DefaultFrameRate = 100.0

// minWindowSize is the smallest rolling-average window, in frames.
const minWindowSize = 30

// ErrInvalidFrameRate is returned for non-positive frame rate arguments,
// which would otherwise turn into zero or negative wait targets.
var ErrInvalidFrameRate = errors.New("frametick: frame rate must be positive")

// FrameCounter tracks per-frame timing for a single loop. It must be
// driven by one goroutine; only the clock calibration it reads through is
// shared process state.
type FrameCounter struct {
	lastTick   clock.Timestamp
	startedAt  clock.Timestamp
	frameCount uint64

	lastFrameTime time.Duration
	lastFrameRate float64

	// frameNanos holds the most recent raw frame durations; its length is
	// fixed at construction and nextSample wraps around it.
	frameNanos []uint64
	nextSample int

	avgFrameTime time.Duration
	avgFrameRate float64

	frameStart clock.Timestamp
	ticked     bool
}

// New creates a FrameCounter seeded with an initial frame rate guess. The
// guess sizes the rolling-average window (at least 30 frames, one second's
// worth otherwise) and stands in for the statistics until real
// measurements exist. Returns ErrInvalidFrameRate if initialRate is not
// positive.
func New(initialRate float64) (*FrameCounter, error) {
	if initialRate <= 0 {
		return nil, ErrInvalidFrameRate
	}

	window := int(initialRate)
	if window < minWindowSize {
		window = minWindowSize
	}

	now := clock.Now()
	seed := time.Duration(1e9 / initialRate)

	return &FrameCounter{
		lastTick:      now,
		startedAt:     now,
		lastFrameTime: seed,
		lastFrameRate: initialRate,
		frameNanos:    make([]uint64, window),
		avgFrameTime:  seed,
		avgFrameRate:  initialRate,
	}, nil
}

// Default creates a FrameCounter seeded with DefaultFrameRate.
func Default() *FrameCounter {
	fc, _ := New(DefaultFrameRate)
	return fc
}

// Tick records the end of one frame and the start of the next. Call it
// exactly once per loop iteration.
func (fc *FrameCounter) Tick() {
	now := clock.Now()

	fc.lastFrameTime = now.DurationSince(fc.lastTick)
	nanos := uint64(fc.lastFrameTime.Nanoseconds())

	fc.frameNanos[fc.nextSample] = nanos
	fc.nextSample = (fc.nextSample + 1) % len(fc.frameNanos)

	// A zero-duration frame keeps the previous rate; 1e9/0 is meaningless.
	if nanos > 0 {
		fc.lastFrameRate = 1e9 / float64(nanos)
	}

	fc.frameCount++

	if fc.frameCount >= uint64(len(fc.frameNanos)) {
		// Steady state: window mean over the recorded samples.
		var total uint64
		for _, n := range fc.frameNanos {
			total += n
		}
		mean := total / uint64(len(fc.frameNanos))
		fc.avgFrameTime = time.Duration(mean)
		if mean > 0 {
			fc.avgFrameRate = 1e9 / float64(mean)
		}
	} else {
		// Warm-up: cumulative average over the counter's whole lifetime,
		// lower fidelity but defined from the very first frame.
		elapsed := now.DurationSince(fc.startedAt)
		fc.avgFrameTime = elapsed / time.Duration(fc.frameCount)
		if fc.avgFrameTime > 0 {
			fc.avgFrameRate = 1e9 / float64(fc.avgFrameTime.Nanoseconds())
		}
	}

	fc.frameStart = now
	fc.lastTick = now
	fc.ticked = true
}

// WaitUntilFrameRate busy-spins until the current frame has lasted at
// least 1/rate seconds, counted from the last Tick. It never sleeps or
// yields, so it holds a core for the whole wait; use it when sub-
// millisecond precision matters more than CPU time. A no-op before the
// first Tick. Returns ErrInvalidFrameRate if rate is not positive.
func (fc *FrameCounter) WaitUntilFrameRate(rate float64) error {
	if rate <= 0 {
		return ErrInvalidFrameRate
	}
	if !fc.ticked {
		return nil
	}

	target := uint64(1e9 / rate)
	start := fc.frameStart.Nanos()

	for elapsedNanos(start) < target {
		// hot spin, keep the scheduler out of it
	}
	return nil
}

// Sleep/spin tier boundaries for SleepUntilFrameRate.
const (
	sleepTier     = 2 * time.Millisecond
	yieldTier     = 100 * time.Microsecond
	sleepSliceDur = 500 * time.Microsecond
)

// SleepUntilFrameRate waits like WaitUntilFrameRate but trades precision
// for CPU time: it sleeps in short slices while far from the deadline,
// yields the goroutine when close, and only spins for the final stretch.
// It never returns early. A no-op before the first Tick. Returns
// ErrInvalidFrameRate if rate is not positive.
func (fc *FrameCounter) SleepUntilFrameRate(rate float64) error {
	if rate <= 0 {
		return ErrInvalidFrameRate
	}
	if !fc.ticked {
		return nil
	}

	target := uint64(1e9 / rate)
	start := fc.frameStart.Nanos()

	for {
		elapsed := elapsedNanos(start)
		if elapsed >= target {
			return nil
		}

		remaining := time.Duration(target - elapsed)
		switch {
		case remaining > sleepTier:
			time.Sleep(sleepSliceDur)
		case remaining > yieldTier:
			runtime.Gosched()
		default:
			// spin out the last stretch for precision
		}
	}
}

// elapsedNanos returns nanoseconds elapsed since the start reading,
// saturating at zero against clock backend noise.
func elapsedNanos(start uint64) uint64 {
	now := clock.Now().Nanos()
	if now <= start {
		return 0
	}
	return now - start
}

// FrameTime returns the duration of the most recent completed frame.
func (fc *FrameCounter) FrameTime() time.Duration {
	return fc.lastFrameTime
}

// AvgFrameTime returns the rolling-average frame duration.
func (fc *FrameCounter) AvgFrameTime() time.Duration {
	return fc.avgFrameTime
}

// FrameRate returns the instantaneous frame rate of the last frame.
func (fc *FrameCounter) FrameRate() float64 {
	return fc.lastFrameRate
}

// AvgFrameRate returns the rolling-average frame rate.
func (fc *FrameCounter) AvgFrameRate() float64 {
	return fc.avgFrameRate
}

// TotalFrames returns the number of Tick calls since construction.
func (fc *FrameCounter) TotalFrames() uint64 {
	return fc.frameCount
}

// String formats the average and instantaneous statistics, e.g.
// "avg: 59.98 fps (16.672ms); current: 60.01 fps (16.664ms)".
func (fc *FrameCounter) String() string {
	return fmt.Sprintf("avg: %.2f fps (%v); current: %.2f fps (%v)",
		fc.AvgFrameRate(), fc.AvgFrameTime(), fc.FrameRate(), fc.FrameTime())
}
