package frametick

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialState(t *testing.T) {
	tests := []struct {
		rate       float64
		wantWindow int
	}{
		{1, 30},
		{29.9, 30},
		{30, 30},
		{100, 100},
		{240, 240},
	}

	for _, tt := range tests {
		fc, err := New(tt.rate)
		require.NoError(t, err)

		assert.Equal(t, tt.rate, fc.FrameRate())
		assert.Equal(t, tt.rate, fc.AvgFrameRate())
		assert.Equal(t, uint64(0), fc.TotalFrames())
		assert.Equal(t, time.Duration(1e9/tt.rate), fc.FrameTime())
		assert.Equal(t, tt.wantWindow, len(fc.frameNanos))
	}
}

func TestNewRejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -1, -0.5, math.Inf(-1)} {
		fc, err := New(rate)
		assert.Nil(t, fc)
		assert.ErrorIs(t, err, ErrInvalidFrameRate)
	}
}

func TestDefault(t *testing.T) {
	fc := Default()
	require.NotNil(t, fc)
	assert.Equal(t, DefaultFrameRate, fc.FrameRate())
	assert.Equal(t, uint64(0), fc.TotalFrames())
}

func TestSingleTick(t *testing.T) {
	fc := Default()

	time.Sleep(time.Millisecond)
	fc.Tick()

	assert.Equal(t, uint64(1), fc.TotalFrames())
	assert.Greater(t, fc.FrameTime(), time.Duration(0))
	assert.Greater(t, fc.FrameRate(), 0.0)
}

func TestTickNeverProducesInfiniteRate(t *testing.T) {
	fc := Default()

	// Tick as fast as possible; even if a frame lands on the same clock
	// reading, the previous rate is retained instead of dividing by zero.
	for i := 0; i < 1000; i++ {
		fc.Tick()
		assert.False(t, math.IsInf(fc.FrameRate(), 0))
		assert.False(t, math.IsNaN(fc.FrameRate()))
	}
}

func TestAvgConvergesToDrivenRate(t *testing.T) {
	// Window of 30 frames; drive 45 frames at ~5ms (~200 fps) so the
	// average reflects only steady-state samples.
	fc, err := New(10)
	require.NoError(t, err)

	for i := 0; i < 45; i++ {
		fc.Tick()
		time.Sleep(5 * time.Millisecond)
	}
	fc.Tick()

	// Sleeps never undershoot, so the average frame time is at least the
	// sleep duration; the upper bound leaves room for scheduler overshoot.
	assert.GreaterOrEqual(t, fc.AvgFrameTime(), 5*time.Millisecond)
	assert.Less(t, fc.AvgFrameTime(), 20*time.Millisecond)
	assert.Greater(t, fc.AvgFrameRate(), 50.0)
	assert.LessOrEqual(t, fc.AvgFrameRate(), 200.0)
}

func TestSteadyStateAvgIsWindowMean(t *testing.T) {
	fc, err := New(10)
	require.NoError(t, err)
	window := len(fc.frameNanos)

	// Run past one full pass so the oldest samples have been evicted.
	for i := 0; i < window+5; i++ {
		fc.Tick()
		time.Sleep(time.Millisecond)
	}

	var total uint64
	for _, n := range fc.frameNanos {
		total += n
	}
	mean := total / uint64(window)

	assert.Equal(t, time.Duration(mean), fc.AvgFrameTime())
}

func TestWarmupAvgIsCumulative(t *testing.T) {
	fc, err := New(100)
	require.NoError(t, err)

	// Far fewer ticks than the 100-frame window: cumulative phase.
	for i := 0; i < 5; i++ {
		fc.Tick()
		time.Sleep(time.Millisecond)
	}

	elapsed := fc.lastTick.DurationSince(fc.startedAt)
	want := elapsed / time.Duration(fc.frameCount)

	assert.Equal(t, want, fc.AvgFrameTime())
}

func TestWaitUntilFrameRateNeverReturnsEarly(t *testing.T) {
	fc := Default()

	start := time.Now()
	fc.Tick()
	require.NoError(t, fc.WaitUntilFrameRate(200))

	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestSleepUntilFrameRateNeverReturnsEarly(t *testing.T) {
	fc := Default()

	start := time.Now()
	fc.Tick()
	require.NoError(t, fc.SleepUntilFrameRate(100))

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWaitBeforeFirstTickIsNoOp(t *testing.T) {
	fc := Default()

	// Rate 1 would mean a one-second wait if these were not no-ops.
	start := time.Now()
	require.NoError(t, fc.WaitUntilFrameRate(1))
	require.NoError(t, fc.SleepUntilFrameRate(1))

	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaitRejectsNonPositiveRate(t *testing.T) {
	fc := Default()
	fc.Tick()

	for _, rate := range []float64{0, -60} {
		assert.ErrorIs(t, fc.WaitUntilFrameRate(rate), ErrInvalidFrameRate)
		assert.ErrorIs(t, fc.SleepUntilFrameRate(rate), ErrInvalidFrameRate)
	}
}

func TestStringFormat(t *testing.T) {
	fc := Default()
	fc.Tick()

	want := regexp.MustCompile(`^avg: \d+\.\d{2} fps \(.+\); current: \d+\.\d{2} fps \(.+\)$`)
	assert.Regexp(t, want, fc.String())
}
