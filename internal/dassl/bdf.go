package dassl

import (
	"context"
	"math"
)

const (
	newtonTol    = 0.33
	stepGrowth   = 2.0
	stepShrink   = 0.25
	easyNewton   = 2
	defaultSteps = 1000
)

// BDF is a first-order backward-differentiation (implicit Euler)
// integrator with a Newton corrector. The iteration matrix is estimated
// once per step and reused across corrector iterations.
type BDF struct{}

func NewBDF() *BDF { return &BDF{} }

func (s *BDF) Integrate(ctx context.Context, f Residual, t0, tf float64, y0, yp0 []float64, cfg Config) (*Result, int) {
	cfg = withDefaults(cfg, t0, tf)
	n := len(y0)

	res := &Result{T: t0, Y: cloneVec(y0), YP: make([]float64, n)}
	if n == 0 || tf <= t0 || cfg.RTol <= 0 || cfg.ATol <= 0 {
		return res, FailNonFinite
	}

	y := cloneVec(y0)
	yp := make([]float64, n)
	if yp0 != nil {
		copy(yp, yp0)
	} else {
		// For residuals linear in y' with unit coefficient, evaluating
		// at y'=0 yields the consistent initial derivative.
		r, status := f(t0, y, yp, make([]float64, n))
		res.Stats.Evaluations++
		if status != 0 {
			return res, FailNonFinite
		}
		copy(yp, r)
	}

	var (
		t       = t0
		h       = cfg.InitialStep
		jac     = newTridiag(n)
		u       = make([]float64, n)
		upList  = make([]float64, n)
		base    = make([]float64, n)
		delta   = make([]float64, n)
		ys      = make([]float64, n)
		yps     = make([]float64, n)
		rs      = make([]float64, n)
		scratch = make([]float64, n)
	)

	for t < tf {
		select {
		case <-ctx.Done():
			fill(res, t, y, yp)
			return res, FailCanceled
		default:
		}

		if res.Stats.Steps >= cfg.MaxSteps {
			fill(res, t, y, yp)
			return res, FailMaxSteps
		}
		if h > tf-t {
			h = tf - t
		}

		iters, stepStatus := s.step(f, t, h, y, yp, u, upList, base, delta, jac, ys, yps, rs, scratch, cfg, &res.Stats)
		if stepStatus != Success {
			res.Stats.Rejected++
			h *= stepShrink
			if h < cfg.MinStep {
				fill(res, t, y, yp)
				if stepStatus == FailNonFinite {
					return res, FailNonFinite
				}
				return res, FailStepUnderflow
			}
			continue
		}

		// Local truncation error estimate for first order: half the
		// predictor-corrector difference, in the same weighted norm.
		for i := 0; i < n; i++ {
			delta[i] = 0.5 * (u[i] - (y[i] + h*yp[i]))
		}
		errNorm := wrms(delta, u, cfg.RTol, cfg.ATol)
		if errNorm > 1 {
			res.Stats.Rejected++
			h *= math.Max(0.9/math.Sqrt(errNorm), stepShrink)
			if h < cfg.MinStep {
				fill(res, t, y, yp)
				return res, FailStepUnderflow
			}
			continue
		}

		for i := 0; i < n; i++ {
			yp[i] = (u[i] - y[i]) / h
		}
		copy(y, u)
		t += h
		res.Stats.Steps++

		if errNorm < 0.25 && iters <= easyNewton && h < cfg.MaxStep {
			h = math.Min(h*stepGrowth, cfg.MaxStep)
		}
	}

	fill(res, t, y, yp)
	return res, Success
}

// step advances one backward-Euler step into u, returning the corrector
// iteration count and Success, FailNewton, or FailNonFinite.
func (s *BDF) step(f Residual, t, h float64, y, yp, u, up, base, delta []float64, jac *tridiag, ys, yps, rs, scratch []float64, cfg Config, stats *Stats) (int, int) {
	n := len(y)
	t1 := t + h

	// Predictor: forward extrapolation along the current derivative.
	for i := 0; i < n; i++ {
		u[i] = y[i] + h*yp[i]
		up[i] = yp[i]
	}

	r, status := f(t1, u, up, base)
	stats.Evaluations++
	if status != 0 {
		return 0, FailNonFinite
	}
	copy(base, r)

	if status := jac.estimate(f, t1, u, y, h, base, ys, yps, rs); status != 0 {
		return 0, FailNonFinite
	}
	stats.Evaluations += 3

	for iter := 1; iter <= cfg.MaxNewton; iter++ {
		stats.NewtonIters++

		copy(delta, base)
		for i := 0; i < n; i++ {
			delta[i] = -delta[i]
		}
		if !jac.solve(delta, scratch) {
			return iter, FailNewton
		}

		for i := 0; i < n; i++ {
			u[i] += delta[i]
			up[i] = (u[i] - y[i]) / h
		}
		if !finiteVec(u) {
			return iter, FailNonFinite
		}

		if wrms(delta, u, cfg.RTol, cfg.ATol) <= newtonTol {
			return iter, Success
		}

		r, status = f(t1, u, up, base)
		stats.Evaluations++
		if status != 0 {
			return iter, FailNonFinite
		}
		copy(base, r)
	}
	return cfg.MaxNewton, FailNewton
}

func withDefaults(cfg Config, t0, tf float64) Config {
	def := DefaultConfig()
	if cfg.RTol == 0 {
		cfg.RTol = def.RTol
	}
	if cfg.ATol == 0 {
		cfg.ATol = def.ATol
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = def.MaxSteps
	}
	if cfg.MaxNewton == 0 {
		cfg.MaxNewton = def.MaxNewton
	}
	if cfg.MaxStep == 0 {
		cfg.MaxStep = (tf - t0) / 2
	}
	if cfg.InitialStep == 0 {
		cfg.InitialStep = (tf - t0) / defaultSteps
	}
	if cfg.MinStep == 0 {
		cfg.MinStep = def.MinStep
	}
	return cfg
}

// wrms is the weighted root-mean-square norm DASSL uses for convergence
// control: each component is scaled by 1/(rtol*|y_i| + atol).
func wrms(v, y []float64, rtol, atol float64) float64 {
	sum := 0.0
	for i := range v {
		w := rtol*math.Abs(y[i]) + atol
		e := v[i] / w
		sum += e * e
	}
	return math.Sqrt(sum / float64(len(v)))
}

func cloneVec(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}

func finiteVec(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func fill(res *Result, t float64, y, yp []float64) {
	res.T = t
	copy(res.Y, y)
	copy(res.YP, yp)
}
