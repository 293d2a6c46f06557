package residual

import (
	"math"
	"testing"

	"github.com/JonasHarsch/dasslcy/internal/reactor"
)

func benchSetup(b *testing.B, n int) (reactor.Parameters, []float64, []float64, []float64) {
	b.Helper()
	p, err := reactor.NewParameters(1e-2, 1.0, -1.0, 1.0, 0.0, 1.0, n)
	if err != nil {
		b.Fatal(err)
	}
	c := make([]float64, n)
	dc := make([]float64, n)
	for i := range c {
		c[i] = math.Exp(-float64(i) / float64(n))
	}
	return p, c, dc, make([]float64, n)
}

func BenchmarkLoop(b *testing.B) {
	p, c, dc, out := benchSetup(b, 1000)
	k := NewLoop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Evaluate(0, c, dc, p, out)
	}
}

func BenchmarkVector(b *testing.B) {
	p, c, dc, out := benchSetup(b, 1000)
	k := NewVector(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Evaluate(0, c, dc, p, out)
	}
}

func BenchmarkUnrolled(b *testing.B) {
	p, c, dc, out := benchSetup(b, 1000)
	k := NewUnrolled()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Evaluate(0, c, dc, p, out)
	}
}

func BenchmarkUnrolled_N100000(b *testing.B) {
	p, c, dc, out := benchSetup(b, 100000)
	k := NewUnrolled()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Evaluate(0, c, dc, p, out)
	}
}
