package clock

import (
	"sort"
	"sync"
	"time"
)

// calibration converts raw counter ticks to nanoseconds.
type calibration struct {
	nanosPerTick float64
}

var (
	calibrationOnce sync.Once
	sharedCal       calibration
)

// sharedCalibration returns the process-wide calibration, measuring it on
// the first call. Safe for concurrent use once initialized.
func sharedCalibration() *calibration {
	calibrationOnce.Do(func() {
		sharedCal = calibrate()
	})
	return &sharedCal
}

// calibrate determines the counter's tick-to-nanosecond ratio. Platforms
// that expose the counter frequency directly (arm64 CNTFRQ_EL0, the generic
// time.Now backend) skip measurement; amd64 TSC frequency is estimated by
// timing the counter against the wall clock.
func calibrate() calibration {
	if hz := counterFrequencyHz(); hz > 0 {
		return calibration{nanosPerTick: 1e9 / float64(hz)}
	}

	// Take several measurements and use the median for stability against
	// scheduling noise during the sleeps.
	const measurements = 5
	const window = 10 * time.Millisecond

	ratios := make([]float64, 0, measurements)
	for i := 0; i < measurements; i++ {
		startTicks := readCounter()
		startTime := time.Now()
		time.Sleep(window)
		endTicks := readCounter()
		elapsed := time.Since(startTime)

		ticks := endTicks - startTicks
		if ticks == 0 {
			continue
		}
		ratios = append(ratios, float64(elapsed.Nanoseconds())/float64(ticks))
	}

	if len(ratios) == 0 {
		return calibration{nanosPerTick: 1}
	}
	sort.Float64s(ratios)
	return calibration{nanosPerTick: ratios[len(ratios)/2]}
}

// deltaNanos converts the tick span between earlier and later to
// nanoseconds, saturating at zero if the span is not positive.
func (c *calibration) deltaNanos(earlier, later uint64) uint64 {
	if later <= earlier {
		return 0
	}
	return uint64(float64(later-earlier) * c.nanosPerTick)
}
