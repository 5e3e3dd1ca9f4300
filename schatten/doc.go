// Package schatten implements a randomized estimator for Schatten-(2p)
// norm powers: the sum of the 2p-th powers of a matrix's singular values,
// estimated without computing a singular value decomposition.
//
// For an m×n matrix B, an n×k standard-normal test matrix O, the sample
// matrix Y = B·O and its Gram matrix X = YᵀY, sums over strictly-increasing
// p-tuples of sampled directions — captured by powers of the strict upper
// triangle of X — give an unbiased estimate:
//
//	E[ trace(T^(p−1)·X) / C(k,p) ] = Σᵢ σᵢ(B)^(2p),
//
// where T is the strict upper triangle of X and C(k,p) is the binomial
// coefficient. The sample count k must exceed p for C(k,p) to be
// non-degenerate.
//
// Numeric honesty: for large p, both the true norm power and the estimate
// can overflow to ±Inf, underflow to zero or become NaN, because singular
// values raised to high powers grow or shrink extremely fast. The estimator
// reports such outcomes with ErrDegenerate instead of silently propagating
// non-finite values into downstream statistics.
//
// Determinism: all draws flow from the seed in Options; identical seed,
// p and k reproduce bit-identical results.
package schatten
