// Package sampler - isotropic Gaussian draws and synthetic test matrices.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/randnla/matrix"
)

// ErrBadDimension is returned when a requested vector/matrix dimension is
// not strictly positive.
var ErrBadDimension = errors.New("sampler: dimension must be > 0")

// Vector draws a length-n isotropic vector: independent standard-normal
// entries, so E[wwᵀ] = I. A nil rng falls back to the default deterministic
// stream (seed==0 policy).
//
// Errors: ErrBadDimension (n <= 0).
// Complexity: O(n).
func Vector(n int, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Vector(%d): %w", n, ErrBadDimension)
	}
	r := rng
	if r == nil {
		r = New(0)
	}

	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = r.NormFloat64()
	}

	return w, nil
}

// Matrix draws an r×c matrix with independent standard-normal entries.
// Columns are isotropic, which is the property the Schatten estimator's
// projection step relies on. Entries are generated in row-major order, so
// draws are bit-reproducible for a fixed seed.
//
// Errors: ErrBadDimension (r <= 0 or c <= 0).
// Complexity: O(r*c).
func Matrix(rows, cols int, rng *rand.Rand) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Matrix(%d,%d): %w", rows, cols, ErrBadDimension)
	}
	r := rng
	if r == nil {
		r = New(0)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, r.NormFloat64())
		}
	}

	return m, nil
}

// Symmetric draws an n×n Gaussian matrix G and returns (G + Gᵀ)/2.
// The result is symmetric but not necessarily positive semi-definite.
//
// Errors: ErrBadDimension.
// Complexity: O(n²).
func Symmetric(n int, rng *rand.Rand) (*matrix.Dense, error) {
	g, err := Matrix(n, n, rng)
	if err != nil {
		return nil, fmt.Errorf("Symmetric: %w", err)
	}
	s, err := matrix.Symmetrize(g)
	if err != nil {
		return nil, fmt.Errorf("Symmetric: %w", err)
	}

	return s, nil
}

// SymmetricPSD draws an n×n Gaussian matrix G and returns the Gram matrix
// GᵀG, which is symmetric positive semi-definite by construction — the
// admissible input class for the trace estimator.
//
// Errors: ErrBadDimension.
// Complexity: O(n³) for the Gram product.
func SymmetricPSD(n int, rng *rand.Rand) (*matrix.Dense, error) {
	g, err := Matrix(n, n, rng)
	if err != nil {
		return nil, fmt.Errorf("SymmetricPSD: %w", err)
	}
	gt, err := matrix.Transpose(g)
	if err != nil {
		return nil, fmt.Errorf("SymmetricPSD: %w", err)
	}
	gram, err := matrix.Mul(gt, g)
	if err != nil {
		return nil, fmt.Errorf("SymmetricPSD: %w", err)
	}

	return gram, nil
}
