package dassl

import "math"

// tridiag holds the three diagonals of the iteration matrix
// dG/dy for G(u) = F(t, u, (u-y)/h).
type tridiag struct {
	sub, diag, sup []float64
}

func newTridiag(n int) *tridiag {
	return &tridiag{
		sub:  make([]float64, n),
		diag: make([]float64, n),
		sup:  make([]float64, n),
	}
}

// estimate fills the matrix by grouped forward differences. Columns with
// the same index mod 3 never touch the same row in a three-point stencil,
// so three perturbed evaluations cover the whole matrix.
//
// base is G(u); yScratch, ypScratch, and rScratch are caller-owned work
// buffers of length n. Returns the residual status of the worst evaluation.
func (m *tridiag) estimate(f Residual, t float64, u, yPrev []float64, h float64, base []float64, yScratch, ypScratch, rScratch []float64) int {
	n := len(u)
	sqrtEps := math.Sqrt(2.2e-16)

	for i := 0; i < n; i++ {
		m.sub[i], m.diag[i], m.sup[i] = 0, 0, 0
	}

	for group := 0; group < 3 && group < n; group++ {
		copy(yScratch, u)
		for j := group; j < n; j += 3 {
			delta := sqrtEps * math.Max(math.Abs(u[j]), 1)
			yScratch[j] = u[j] + delta
		}
		for i := 0; i < n; i++ {
			ypScratch[i] = (yScratch[i] - yPrev[i]) / h
		}

		r, status := f(t, yScratch, ypScratch, rScratch)
		if status != 0 {
			return status
		}

		for j := group; j < n; j += 3 {
			delta := yScratch[j] - u[j]
			if i := j - 1; i >= 0 {
				m.sup[i] = (r[i] - base[i]) / delta
			}
			m.diag[j] = (r[j] - base[j]) / delta
			if i := j + 1; i < n {
				m.sub[i] = (r[i] - base[i]) / delta
			}
		}
	}
	return 0
}

// solve overwrites rhs with the solution of m*x = rhs by the Thomas
// algorithm, using scratch for the modified superdiagonal. Returns false
// when a pivot vanishes.
func (m *tridiag) solve(rhs, scratch []float64) bool {
	n := len(rhs)
	if m.diag[0] == 0 {
		return false
	}
	scratch[0] = m.sup[0] / m.diag[0]
	rhs[0] /= m.diag[0]

	for i := 1; i < n; i++ {
		piv := m.diag[i] - m.sub[i]*scratch[i-1]
		if piv == 0 {
			return false
		}
		if i < n-1 {
			scratch[i] = m.sup[i] / piv
		}
		rhs[i] = (rhs[i] - m.sub[i]*rhs[i-1]) / piv
	}

	for i := n - 2; i >= 0; i-- {
		rhs[i] -= scratch[i] * rhs[i+1]
	}
	return true
}
