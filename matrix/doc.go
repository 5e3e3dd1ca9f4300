// Package matrix offers the dense linear-algebra core used by every
// estimator and optimizer in randnla.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access.
//   - Canonical kernels (Add, Sub, Mul, Transpose, Scale, MatVec, Dot) with
//     strict fail-fast validation and deterministic loop order.
//   - Structural helpers for randomized estimators: Trace (direct diagonal
//     sum — the ground truth a stochastic trace estimate is compared to),
//     StrictUpper (strict upper-triangle extraction), Pow (non-negative
//     integer matrix power, exponent 0 yields the identity), Identity and
//     Symmetrize.
//
// All kernels return package-level sentinel errors (errors.go) and never
// panic on user-triggered conditions; callers match with errors.Is.
//
// See the examples in this package and the estimator packages for usage.
package matrix
