package reactor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter indicates a reactor description that cannot produce
// a valid discretization.
var ErrInvalidParameter = errors.New("reactor: invalid parameter")

// Parameters holds the physical constants and discretization of one
// plug-flow reactor problem. Values are immutable after construction.
type Parameters struct {
	D  float64 // diffusion coefficient
	Vz float64 // axial velocity
	K  float64 // reaction rate
	Cf float64 // feed concentration
	Z0 float64 // domain start
	Zf float64 // domain end
	N  int     // interior grid nodes
	H  float64 // grid spacing, (Zf-Z0)/N
}

// NewParameters validates the problem description and derives the grid
// spacing. Construction is the only place validation happens; the residual
// hot path assumes a well-formed value.
func NewParameters(d, vz, k, cf, z0, zf float64, n int) (Parameters, error) {
	if n < 2 {
		return Parameters{}, fmt.Errorf("%w: need at least 2 grid nodes, got %d", ErrInvalidParameter, n)
	}
	if zf <= z0 {
		return Parameters{}, fmt.Errorf("%w: domain end %g must exceed start %g", ErrInvalidParameter, zf, z0)
	}
	if vz == 0 {
		return Parameters{}, fmt.Errorf("%w: velocity must be nonzero", ErrInvalidParameter)
	}
	if d < 0 {
		return Parameters{}, fmt.Errorf("%w: diffusion coefficient must be non-negative, got %g", ErrInvalidParameter, d)
	}
	for _, v := range []float64{d, vz, k, cf, z0, zf} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Parameters{}, fmt.Errorf("%w: non-finite value %g", ErrInvalidParameter, v)
		}
	}
	return Parameters{
		D:  d,
		Vz: vz,
		K:  k,
		Cf: cf,
		Z0: z0,
		Zf: zf,
		N:  n,
		H:  (zf - z0) / float64(n),
	}, nil
}

// InitialState returns the startup concentration profile: an empty reactor
// (zero concentration at every interior node).
func InitialState(p Parameters) []float64 {
	return make([]float64, p.N)
}
