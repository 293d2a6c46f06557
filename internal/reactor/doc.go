// Package reactor describes the plug-flow reactor problem being solved.
//
// The reactor is a 1-D axial domain [z0, zf] discretized into N interior
// nodes by the method of lines. The package provides:
//
//   - [Parameters]: validated, immutable problem description
//   - [InletGhost], [OutletGhost]: boundary-condition closures producing
//     the virtual nodes outside the physical domain
//   - [InitialState]: the startup concentration profile
//
// Parameters values are plain data and safe to share between concurrent
// residual evaluations.
package reactor
