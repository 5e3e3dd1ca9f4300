// Package trace implements the Hutchinson stochastic trace estimator.
//
// For a symmetric positive semi-definite n×n matrix A and an isotropic
// random vector w (independent standard-normal entries),
//
//	E[wᵀAw] = trace(A),
//
// so the arithmetic mean of k independent quadratic forms is an unbiased
// estimate of trace(A), and its sample variance shrinks as O(1/k).
//
// Each trial costs one O(n²) matrix-vector multiply plus an O(n) inner
// product — O(k·n²) total, versus O(n) for summing diagonal entries
// directly. The estimator loses at small n and wins when direct diagonal
// access is unavailable (implicit operators, matrix-free settings).
//
// Determinism: all draws flow from the seed in Options; identical seed and
// k reproduce bit-identical results.
package trace
