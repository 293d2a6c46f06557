package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/JonasHarsch/dasslcy/internal/config"
	"github.com/JonasHarsch/dasslcy/internal/dassl"
	"github.com/JonasHarsch/dasslcy/internal/reactor"
	"github.com/JonasHarsch/dasslcy/internal/residual"
)

// Setup is one isolated benchmark environment: parameters, kernel, and
// buffers for a single (variant, N) cell. A Setup is single-owner; it must
// not serve two runs at once.
type Setup struct {
	Variant string
	N       int

	params reactor.Parameters
	kernel residual.Kernel
	solver dassl.Adapter
	solCfg dassl.Config
	tFinal float64
	out    []float64
}

// Harness builds setups and times runs. NewAdapter is the solver
// injection point; it defaults to the BDF integrator.
type Harness struct {
	cfg        *config.Config
	NewAdapter func() dassl.Adapter
	progress   func(Progress)
}

// Progress reports one finished sweep cell.
type Progress struct {
	Index int
	Total int
	Cell  Cell
}

func New(cfg *config.Config) *Harness {
	return &Harness{
		cfg:        cfg,
		NewAdapter: func() dassl.Adapter { return dassl.NewBDF() },
	}
}

// OnProgress registers a callback invoked after every sweep cell.
func (h *Harness) OnProgress(fn func(Progress)) { h.progress = fn }

// NewSetup validates and assembles an isolated environment for one cell.
func (h *Harness) NewSetup(variant string, n int) (*Setup, error) {
	prob := h.cfg.Problem
	p, err := reactor.NewParameters(prob.D, prob.Vz, prob.K, prob.Cf, prob.Z0, prob.Zf, n)
	if err != nil {
		return nil, err
	}
	kern, err := residual.New(variant, n)
	if err != nil {
		return nil, err
	}
	solCfg := dassl.Config{RTol: h.cfg.Solver.RTol, ATol: h.cfg.Solver.ATol}
	if err := solCfg.Validate(0, h.cfg.Solver.TFinal); err != nil {
		return nil, fmt.Errorf("setup %s/N=%d: %w", variant, n, err)
	}
	return &Setup{
		Variant: variant,
		N:       n,
		params:  p,
		kernel:  kern,
		solver:  h.NewAdapter(),
		solCfg:  solCfg,
		tFinal:  h.cfg.Solver.TFinal,
		out:     make([]float64, n),
	}, nil
}

// Run performs one full integration from fresh initial conditions and
// returns the solver status.
func (h *Harness) Run(ctx context.Context, s *Setup) int {
	f := func(t float64, y, yp, out []float64) ([]float64, int) {
		if out == nil {
			out = s.out
		}
		return s.kernel.Evaluate(t, y, yp, s.params, out)
	}
	y0 := reactor.InitialState(s.params)
	_, status := s.solver.Integrate(ctx, f, 0, s.tFinal, y0, nil, s.solCfg)
	return status
}

// Measure times reps repetitions of Run on the same setup. Repetitions
// with a nonzero status are counted as failures and contribute no sample.
func (h *Harness) Measure(ctx context.Context, s *Setup, reps int) Measurement {
	var m Measurement

	for i := 0; i < reps; i++ {
		start := time.Now()
		status := h.Run(ctx, s)
		elapsed := time.Since(start)

		if status != dassl.Success {
			m.Failures++
			if m.Status == dassl.Success {
				m.Status = status
			}
			continue
		}
		m.Samples = append(m.Samples, elapsed)
	}

	m.finish(h.cfg.Bench.NoiseFactor)
	return m
}

// Sweep measures every (size, variant) cell from the configuration.
// Failed cells are recorded and the sweep continues; cancellation stops
// between cells and returns the partial table with ctx.Err().
func (h *Harness) Sweep(ctx context.Context) (*Table, error) {
	sizes := h.cfg.Bench.Sizes
	variants := h.cfg.Bench.Variants
	table := &Table{}
	total := len(sizes) * len(variants)

	idx := 0
	for _, n := range sizes {
		for _, variant := range variants {
			select {
			case <-ctx.Done():
				return table, ctx.Err()
			default:
			}
			idx++

			cell := Cell{Variant: variant, N: n}
			setup, err := h.NewSetup(variant, n)
			if err != nil {
				cell.Err = err.Error()
				cell.Failed = true
			} else {
				cell.Measurement = h.Measure(ctx, setup, h.cfg.Bench.Reps)
				cell.Failed = cell.Measurement.Failures > 0
			}
			table.Cells = append(table.Cells, cell)

			if h.progress != nil {
				h.progress(Progress{Index: idx, Total: total, Cell: cell})
			}
		}
	}
	return table, nil
}

// Measurement aggregates the timing samples of one cell.
type Measurement struct {
	Samples  []time.Duration
	Mean     time.Duration
	Stddev   time.Duration
	Failures int
	Status   int // first nonzero solver status observed, 0 otherwise
	// Noisy marks a spread between fastest and slowest sample beyond the
	// configured factor; a data-quality observation, not a failure.
	Noisy bool
}

func (m *Measurement) finish(noiseFactor float64) {
	if len(m.Samples) == 0 {
		return
	}

	var sum time.Duration
	min, max := m.Samples[0], m.Samples[0]
	for _, d := range m.Samples {
		sum += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	m.Mean = sum / time.Duration(len(m.Samples))

	var sq float64
	for _, d := range m.Samples {
		diff := float64(d - m.Mean)
		sq += diff * diff
	}
	m.Stddev = time.Duration(math.Sqrt(sq / float64(len(m.Samples))))

	if noiseFactor > 0 && min > 0 && float64(max) > noiseFactor*float64(min) {
		m.Noisy = true
	}
}
