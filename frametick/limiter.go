package frametick

import (
	"log/slog"
	"time"
)

// Limiter controls frame pacing for a host loop. It lets loop code stay
// agnostic about the pacing strategy in use.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless or
// benchmark runs).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// TickerLimiter uses time.Ticker for simple, consistent pacing. Coarser
// than the counter-backed limiters but good enough when the OS tick
// granularity is acceptable.
type TickerLimiter struct {
	rate   float64
	ticker *time.Ticker
}

func NewTickerLimiter(rate float64) (*TickerLimiter, error) {
	if rate <= 0 {
		return nil, ErrInvalidFrameRate
	}
	return &TickerLimiter{
		rate:   rate,
		ticker: time.NewTicker(frameDuration(rate)),
	}, nil
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(frameDuration(t.rate))
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}

// SpinLimiter paces a loop by busy-spinning on a FrameCounter. Highest
// precision, full core consumption while waiting.
type SpinLimiter struct {
	counter *FrameCounter
	rate    float64
}

func NewSpinLimiter(counter *FrameCounter, rate float64) (*SpinLimiter, error) {
	if rate <= 0 {
		return nil, ErrInvalidFrameRate
	}
	return &SpinLimiter{counter: counter, rate: rate}, nil
}

func (s *SpinLimiter) WaitForNextFrame() {
	s.counter.WaitUntilFrameRate(s.rate)
}

func (s *SpinLimiter) Reset() {}

// SleepLimiter paces a loop through the hybrid sleep/spin wait. It logs
// over-budget frames at debug level since they mean the workload, not the
// limiter, is setting the pace.
type SleepLimiter struct {
	counter *FrameCounter
	rate    float64
}

func NewSleepLimiter(counter *FrameCounter, rate float64) (*SleepLimiter, error) {
	if rate <= 0 {
		return nil, ErrInvalidFrameRate
	}
	return &SleepLimiter{counter: counter, rate: rate}, nil
}

func (s *SleepLimiter) WaitForNextFrame() {
	budget := frameDuration(s.rate)
	if spent := s.counter.FrameTime(); spent > budget {
		slog.Debug("Frame over budget",
			"budget_ms", budget.Milliseconds(),
			"frame_ms", spent.Milliseconds())
	}
	s.counter.SleepUntilFrameRate(s.rate)
}

func (s *SleepLimiter) Reset() {}

// frameDuration returns the target duration of a single frame at the
// given rate.
func frameDuration(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / rate)
}
