package residual

import "github.com/JonasHarsch/dasslcy/internal/reactor"

// Unrolled is the specialized kernel: boundary rows are peeled off so the
// interior loop carries no branches, and all coefficients are hoisted into
// locals. This is the shape an ahead-of-time specializer would emit for a
// fixed three-point stencil.
type Unrolled struct{}

func NewUnrolled() *Unrolled { return &Unrolled{} }

func (*Unrolled) Name() string { return "unrolled" }

func (*Unrolled) Evaluate(t float64, c, dc []float64, p reactor.Parameters, out []float64) ([]float64, int) {
	n := p.N
	out = ensureOut(out, n)
	if !finite(c) || !finite(dc) {
		return out, StatusNonFinite
	}

	aux2 := p.D / (p.H * p.H)
	aux3 := p.Vz / (2 * p.H)
	k := p.K

	c0 := reactor.InletGhost(c[0], p.Cf, p.D, p.Vz, p.H)
	out[0] = aux2*(c[1]-2*c[0]+c0) - aux3*(c[1]-c0) + k*c[0] - dc[0]

	for i := 1; i < n-1; i++ {
		out[i] = aux2*(c[i+1]-2*c[i]+c[i-1]) - aux3*(c[i+1]-c[i-1]) + k*c[i] - dc[i]
	}

	cn1 := reactor.OutletGhost(c[n-1])
	out[n-1] = aux2*(cn1-2*c[n-1]+c[n-2]) - aux3*(cn1-c[n-2]) + k*c[n-1] - dc[n-1]
	return out, StatusOK
}
