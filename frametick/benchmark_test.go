package frametick

import (
	"testing"

	"github.com/frametick/go-frametick/frametick/clock"
)

// Tick sits on the hot per-frame path, so it should stay allocation-free.
func BenchmarkTick(b *testing.B) {
	fc := Default()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fc.Tick()
	}
}

func BenchmarkClockNow(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clock.Now()
	}
}

func BenchmarkClockNanos(b *testing.B) {
	ts := clock.Now()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ts.Nanos()
	}
}
