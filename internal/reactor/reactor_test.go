package reactor

import (
	"errors"
	"math"
	"testing"
)

func TestNewParameters(t *testing.T) {
	p, err := NewParameters(1.0, 1.0, -1.0, 1.0, 0.0, 1.0, 10)
	if err != nil {
		t.Fatalf("valid construction failed: %v", err)
	}
	if p.H != 0.1 {
		t.Errorf("expected h=0.1, got %g", p.H)
	}
}

func TestNewParameters_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		d, vz, z0, zf float64
		n             int
	}{
		{"too few nodes", 1.0, 1.0, 0.0, 1.0, 1},
		{"inverted domain", 1.0, 1.0, 1.0, 0.0, 10},
		{"empty domain", 1.0, 1.0, 1.0, 1.0, 10},
		{"zero velocity", 1.0, 0.0, 0.0, 1.0, 10},
		{"negative diffusion", -1.0, 1.0, 0.0, 1.0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParameters(tt.d, tt.vz, -1.0, 1.0, tt.z0, tt.zf, tt.n)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestNewParameters_NonFinite(t *testing.T) {
	_, err := NewParameters(math.NaN(), 1.0, -1.0, 1.0, 0.0, 1.0, 10)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for NaN diffusion, got %v", err)
	}
}

func TestGridSpacingPositive(t *testing.T) {
	for _, n := range []int{2, 5, 100, 10000} {
		p, err := NewParameters(1e-3, 2.0, 0.0, 1.0, -1.0, 3.0, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if p.H <= 0 {
			t.Errorf("n=%d: expected positive spacing, got %g", n, p.H)
		}
		if got := (p.Zf - p.Z0) / float64(p.N); p.H != got {
			t.Errorf("n=%d: spacing inconsistent with domain, got %g want %g", n, p.H, got)
		}
	}
}

func TestInletGhost_ZeroDiffusion(t *testing.T) {
	// Pure advective inflow must reproduce the feed exactly.
	for _, cf := range []float64{0.0, 1.0, -3.5, 1e12} {
		if got := InletGhost(0.7, cf, 0.0, 1.0, 0.1); got != cf {
			t.Errorf("cf=%g: expected exact feed value, got %g", cf, got)
		}
	}
}

func TestInletGhost_Mixed(t *testing.T) {
	// aux1 = 1/(1*0.5) = 2, so C0 = (2*0.4 + 1)/3 = 0.6.
	got := InletGhost(0.4, 1.0, 1.0, 1.0, 0.5)
	if math.Abs(got-0.6) > 1e-15 {
		t.Errorf("expected 0.6, got %g", got)
	}
}

func TestOutletGhost(t *testing.T) {
	for _, cn := range []float64{0.0, 1.0, -2.0, 1e-9} {
		if got := OutletGhost(cn); got != cn {
			t.Errorf("expected identity for %g, got %g", cn, got)
		}
	}
}

func TestInitialState(t *testing.T) {
	p, _ := NewParameters(1.0, 1.0, -1.0, 1.0, 0.0, 1.0, 7)
	c := InitialState(p)
	if len(c) != 7 {
		t.Fatalf("expected 7 nodes, got %d", len(c))
	}
	for i, v := range c {
		if v != 0 {
			t.Errorf("node %d: expected empty reactor, got %g", i, v)
		}
	}
}
