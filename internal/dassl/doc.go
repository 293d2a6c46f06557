// Package dassl integrates implicit differential-algebraic systems of the
// form F(t, y, y') = 0.
//
// The package defines the [Adapter] interface consumed by the benchmark
// harness and provides [BDF], a fixed-leading-coefficient backward-Euler
// integrator with a damped Newton corrector and a finite-difference
// tridiagonal Jacobian. The tridiagonal shape matches three-point spatial
// stencils, which is exactly what the reactor discretization produces; a
// full DASSL port could be dropped in behind the same interface.
//
// Residual callbacks communicate failure through integer status codes
// rather than errors, keeping the corrector loop allocation-free.
package dassl
