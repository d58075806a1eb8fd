package frametick

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpLimiter(t *testing.T) {
	limiter := NewNoOpLimiter()

	start := time.Now()
	limiter.WaitForNextFrame()
	limiter.Reset()

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestTickerLimiterPaces(t *testing.T) {
	limiter, err := NewTickerLimiter(100)
	require.NoError(t, err)
	defer limiter.Stop()

	// Three ticks at 10ms apiece; the ticker never fires early.
	start := time.Now()
	for i := 0; i < 3; i++ {
		limiter.WaitForNextFrame()
	}

	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestTickerLimiterRejectsNonPositiveRate(t *testing.T) {
	limiter, err := NewTickerLimiter(0)
	assert.Nil(t, limiter)
	assert.ErrorIs(t, err, ErrInvalidFrameRate)
}

func TestSpinLimiterPaces(t *testing.T) {
	counter := Default()
	limiter, err := NewSpinLimiter(counter, 200)
	require.NoError(t, err)

	start := time.Now()
	counter.Tick()
	limiter.WaitForNextFrame()

	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestSleepLimiterPaces(t *testing.T) {
	counter := Default()
	limiter, err := NewSleepLimiter(counter, 100)
	require.NoError(t, err)

	start := time.Now()
	counter.Tick()
	limiter.WaitForNextFrame()

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestCounterLimitersRejectNonPositiveRate(t *testing.T) {
	counter := Default()

	spin, err := NewSpinLimiter(counter, -1)
	assert.Nil(t, spin)
	assert.ErrorIs(t, err, ErrInvalidFrameRate)

	sleep, err := NewSleepLimiter(counter, 0)
	assert.Nil(t, sleep)
	assert.ErrorIs(t, err, ErrInvalidFrameRate)
}
