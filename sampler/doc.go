// Package sampler centralizes deterministic random generation for all
// randomized estimators.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors when needed.
//
// The package provides seeded isotropic Gaussian vectors and matrices
// (E[wwᵀ] = I for a standard-normal w) plus the synthetic test inputs the
// sweep drivers feed to the estimators: general Gaussian rectangles,
// symmetrized squares, and Gram-built symmetric positive semi-definite
// matrices.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use Derive to create independent streams for parallel
//     sweep cells.
package sampler
