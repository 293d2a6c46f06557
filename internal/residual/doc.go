// Package residual evaluates the discretized plug-flow reactor residual.
//
// The method-of-lines discretization turns the convection-diffusion-reaction
// PDE into N algebraic equations per time level:
//
//	R[i] = aux2*(C[i+1] - 2*C[i] + C[i-1]) - aux3*(C[i+1] - C[i-1]) + k*C[i] - dC[i]
//
// with aux2 = D/h^2, aux3 = vz/(2h), and the ghost values C[0] and C[N+1]
// supplied by the boundary closures in the reactor package.
//
// Several [Kernel] implementations compute the identical formula with
// different execution strategies:
//
//   - [Loop]: straightforward per-element loop
//   - [Vector]: bulk passes over precomputed neighbor-difference slices
//   - [Unrolled]: boundary rows peeled off, coefficients hoisted
//
// All variants share the per-element arithmetic order, so their outputs
// agree to round-off for identical inputs. A kernel value owns its scratch
// storage and must not be shared between in-flight evaluations.
package residual
