package residual

import (
	"fmt"
	"math"

	"github.com/JonasHarsch/dasslcy/internal/reactor"
)

// Evaluation status codes. The hot path reports failure through these
// instead of errors so the solver callback stays allocation-free.
const (
	StatusOK        = 0
	StatusNonFinite = 1
)

// Kernel computes the full residual vector for one (t, C, dC) triple.
//
// Evaluate writes into out when a buffer of length p.N is provided and
// allocates a fresh vector otherwise; both modes produce the same numbers.
// The returned status is StatusOK on success and nonzero on unrecoverable
// failure (non-finite input). Implementations must not retain c, dc, or
// out past the call.
type Kernel interface {
	Name() string
	Evaluate(t float64, c, dc []float64, p reactor.Parameters, out []float64) ([]float64, int)
}

// New constructs the named kernel variant sized for n interior nodes.
func New(name string, n int) (Kernel, error) {
	switch name {
	case "loop":
		return NewLoop(), nil
	case "vector":
		return NewVector(n), nil
	case "unrolled":
		return NewUnrolled(), nil
	default:
		return nil, fmt.Errorf("residual: unknown kernel variant %q", name)
	}
}

// Variants lists the available kernel names in registration order.
func Variants() []string {
	return []string{"loop", "vector", "unrolled"}
}

func ensureOut(out []float64, n int) []float64 {
	if len(out) == n {
		return out
	}
	return make([]float64, n)
}

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
