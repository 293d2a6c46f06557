package residual

import "github.com/JonasHarsch/dasslcy/internal/reactor"

// Loop is the reference kernel: one pass, one element at a time, ghost
// values substituted at the ends by branching on the index.
type Loop struct{}

func NewLoop() *Loop { return &Loop{} }

func (*Loop) Name() string { return "loop" }

func (*Loop) Evaluate(t float64, c, dc []float64, p reactor.Parameters, out []float64) ([]float64, int) {
	n := p.N
	out = ensureOut(out, n)
	if !finite(c) || !finite(dc) {
		return out, StatusNonFinite
	}

	aux2 := p.D / (p.H * p.H)
	aux3 := p.Vz / (2 * p.H)
	c0 := reactor.InletGhost(c[0], p.Cf, p.D, p.Vz, p.H)
	cn1 := reactor.OutletGhost(c[n-1])

	for i := 0; i < n; i++ {
		left := c0
		if i > 0 {
			left = c[i-1]
		}
		right := cn1
		if i < n-1 {
			right = c[i+1]
		}
		out[i] = aux2*(right-2*c[i]+left) - aux3*(right-left) + p.K*c[i] - dc[i]
	}
	return out, StatusOK
}
