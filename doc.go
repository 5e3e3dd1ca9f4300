// Package randnla is an in-memory playground for randomized numerical
// linear algebra — stochastic estimators for matrix quantities that are
// expensive (or impossible) to read off directly, plus the classical
// optimization routines used to study them.
//
// 🚀 What is randnla?
//
//	A deterministic, zero-dependency library that brings together:
//		• Matrix core: dense row-major float64 matrices + canonical kernels
//		• Decompositions: Jacobi eigenvalues, Doolittle LU, inverse, solve
//		• Samplers: seeded isotropic Gaussian vectors and matrices
//		• Trace estimation: Hutchinson quadratic-form estimator with variance
//		• Schatten norms: randomized Schatten-(2p) power estimator
//		• Optimizers: Newton–Raphson, gradient descent, stochastic GD
//		• Sweeps: timed parameter grids with CSV export
//
// ✨ Why choose randnla?
//
//   - Reproducible – every random draw flows from one explicit seed
//   - Rock-solid guarantees – sentinel errors, strict fail-fast validation
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – degenerate results are reported, never propagated
//
// Under the hood, everything is organized into focused subpackages:
//
//	matrix/     — Dense storage, kernels (Add/Sub/Mul/Transpose/Scale/MatVec),
//	              structural helpers (Trace, StrictUpper, Pow, Symmetrize)
//	matrix/ops/ — Eigen (Jacobi), LU, Inverse, Solve
//	sampler/    — deterministic Gaussian draws + seed-stream derivation
//	trace/      — Hutchinson trace estimator
//	schatten/   — Schatten-(2p) power estimator + exact reference
//	metrics/    — absolute / mean-absolute / per-element RMSE utilities
//	optimize/   — Newton–Raphson, gradient descent, SGD
//	sweep/      — parameter-grid drivers, timing, result tables, CSV
//
// Dive into the package docs and example tests for usage patterns.
//
//	go get github.com/katalvlaran/randnla
package randnla
