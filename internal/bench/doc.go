// Package bench times full reactor integrations across kernel variants
// and problem sizes.
//
// A [Setup] owns everything one timed run touches: the parameter value,
// the kernel (with its scratch), and the residual buffer. Setups are never
// shared between variants, sizes, or in-flight runs, so repetitions cannot
// contaminate each other. Each repetition rebuilds its initial conditions.
//
// Failed runs are bookkeeping, not aborts: a cell whose runs return a
// nonzero solver status is marked failed and contributes no timing sample,
// and the sweep continues with the remaining cells.
package bench
