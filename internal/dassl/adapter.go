package dassl

import (
	"context"
	"errors"
)

// Residual evaluates F(t, y, y') into out and reports a status: 0 on
// success, nonzero on unrecoverable failure. Implementations write into
// out when it has the right length and allocate otherwise.
type Residual func(t float64, y, yp, out []float64) ([]float64, int)

// Integration status codes returned by [Adapter.Integrate].
const (
	Success           = 0
	FailNonFinite     = 1
	FailNewton        = 2
	FailStepUnderflow = 3
	FailMaxSteps      = 4
	FailCanceled      = 5
)

// StatusString names an integration status code for reports.
func StatusString(code int) string {
	switch code {
	case Success:
		return "success"
	case FailNonFinite:
		return "non-finite"
	case FailNewton:
		return "newton-diverged"
	case FailStepUnderflow:
		return "step-underflow"
	case FailMaxSteps:
		return "max-steps"
	case FailCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Domain errors for solver configuration.
var (
	ErrBadTolerance = errors.New("dassl: tolerances must be positive")
	ErrBadInterval  = errors.New("dassl: integration end must exceed start")
)

// Config controls one integration run. Zero values fall back to the
// defaults from [DefaultConfig].
type Config struct {
	RTol        float64
	ATol        float64
	InitialStep float64
	MinStep     float64
	MaxStep     float64
	MaxSteps    int
	MaxNewton   int
}

// Validate rejects configurations that cannot produce a meaningful run
// over [t0, tf]. Zero values are allowed; they default at Integrate time.
func (c Config) Validate(t0, tf float64) error {
	if c.RTol < 0 || c.ATol < 0 {
		return ErrBadTolerance
	}
	if tf <= t0 {
		return ErrBadInterval
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		RTol:      1e-6,
		ATol:      1e-8,
		MinStep:   1e-12,
		MaxSteps:  100000,
		MaxNewton: 6,
	}
}

// Stats records the work one integration performed.
type Stats struct {
	Steps       int
	Rejected    int
	NewtonIters int
	Evaluations int
}

// Result is the integration outcome: the state and derivative at the time
// actually reached, plus work counters. On failure T reports how far the
// integration got.
type Result struct {
	T     float64
	Y     []float64
	YP    []float64
	Stats Stats
}

// Adapter is the solver interface the benchmark harness drives. Status 0
// means the integration converged to tf; nonzero is surfaced to the caller
// as a failed run, never retried internally.
type Adapter interface {
	Integrate(ctx context.Context, f Residual, t0, tf float64, y0, yp0 []float64, cfg Config) (*Result, int)
}
