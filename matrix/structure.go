// SPDX-License-Identifier: MIT
// Package matrix: structural helpers for randomized estimators.
//
// Purpose:
//   - Trace: the direct O(n) diagonal sum every stochastic trace estimate is
//     judged against.
//   - StrictUpper: strict upper-triangle extraction (zero diagonal and lower
//     triangle), the combinatorial device behind the Schatten estimator.
//   - Pow: explicit non-negative integer matrix power; exponent 0 yields the
//     identity so callers never rely on implicit repeated-multiplication
//     behavior for the degenerate case.
//   - Identity, Symmetrize: small constructors shared by samplers and tests.

package matrix

// Operation name constants for unified error wrapping.
const (
	opTrace       = "Trace"
	opStrictUpper = "StrictUpper"
	opPow         = "Pow"
	opIdentity    = "Identity"
	opSymmetrize  = "Symmetrize"
)

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape (n <= 0).
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Trace returns the sum of diagonal entries of a square matrix.
// This is the exact, deterministic ground truth for stochastic trace
// estimation: O(n) given direct diagonal access, versus O(k·n²) for the
// randomized estimate.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) time, O(1) space.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	var sum, v float64
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}
	for i := 0; i < n; i++ {
		v, _ = m.At(i, i) // bounds are valid by construction
		sum += v
	}

	return sum, nil
}

// StrictUpper returns a copy of m with the diagonal and the lower triangle
// zeroed, keeping only entries (i,j) with j > i. The result captures
// strictly-increasing index pairs, which is what makes sums over the strict
// upper triangle range over distinct unordered combinations exactly once.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) time and memory.
func StrictUpper(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opStrictUpper, err)
	}

	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opStrictUpper, err)
	}

	var v float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opStrictUpper, err)
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// Pow raises a square matrix to a non-negative integer power via repeated
// multiplication.
//
// Behavior highlights:
//   - exp == 0 returns the identity (explicitly defined, not assumed).
//   - exp == 1 returns a clone, so the input is never aliased.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
// Complexity: O(exp·n³) time, O(n²) space. Repeated multiplication is
// intentional — exponents here are small (p−1 for modest p) and the linear
// scheme keeps rounding behavior predictable across runs.
func Pow(m Matrix, exp int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if exp < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}

	n := m.Rows()
	if exp == 0 {
		id, err := Identity(n)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return id, nil
	}

	// Start from a detached copy and fold in one factor per step.
	res, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for e := 1; e < exp; e++ {
		res, err = Mul(res, m)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}

// Symmetrize returns (A + Aᵀ)/2 for a square matrix A.
// Used to turn raw Gaussian draws into symmetric test inputs.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	t, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	s, err := Add(m, t)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	half, err := Scale(s, 0.5)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return half, nil
}

// asDense returns m as a fresh *Dense copy regardless of concrete type.
// Complexity: O(r*c).
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
