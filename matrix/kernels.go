// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels.
//
// All kernels perform strict fail-fast validation via the central validators,
// allocate exactly one fresh *Dense result, never mutate their operands, and
// traverse in a fixed deterministic order (flat 0..n-1 on the *Dense fast
// path; i→j→k otherwise).

package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opDot       = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub so validation, allocation and the fast path live once.
// Complexity: O(r*c) time, O(r*c) space for the result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Stage 1 (Validate): both operands present and conformable.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Stage 2 (Execute): fast path when both operands are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): A,B non-nil, A.Cols == B.Rows.
// Stage 2 (Execute): i→k→j with row-major strides on the *Dense fast path,
// skipping zero A[i,k] entries; i→j→k on the generic path.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: contiguous row-major accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				aBase, rBase := i*inner, i*cols
				for k := 0; k < inner; k++ {
					av := da.data[aBase+k]
					if av == 0 {
						continue // zero row entry contributes nothing
					}
					bBase := k * cols
					for j := 0; j < cols; j++ {
						res.data[rBase+j] += av * db.data[bBase+j]
					}
				}
			}

			return res, nil
		}
	}

	// Generic path with fixed i→j→k order.
	var av, bv, sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = 0
			for k := 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if d, ok := a.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns s·A as a fresh Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(a Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := a.(*Dense); ok {
		for idx := 0; idx < rows*cols; idx++ {
			res.data[idx] = s * d.data[idx]
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = s * v
		}
	}

	return res, nil
}

// MatVec computes y = A·x for a length-Cols(A) vector x.
// The returned slice has length Rows(A); x is never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space.
func MatVec(a Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)

	if d, ok := a.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			var sum float64
			for j := 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v, sum float64
	var err error
	for i := 0; i < rows; i++ {
		sum = 0
		for j := 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Dot computes the inner product ⟨x, y⟩ of two equal-length vectors.
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	var sum float64
	for i := 0; i < len(x); i++ {
		sum += x[i] * y[i]
	}

	return sum, nil
}
