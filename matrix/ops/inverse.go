// Package ops provides advanced matrix operations for the randnla/matrix
// package. Inverse computes the inverse of a square matrix using LU
// decomposition and forward/backward substitution.
package ops

import (
	"fmt"

	"github.com/katalvlaran/randnla/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is
// not square or singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Decompose): A = L·U via Doolittle.
//	Stage 3 (Prepare): allocate result matrix and scratch slices.
//	Stage 4 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 5 (Finalize): assemble columns into the inverse and return.
//
// Errors: matrix.ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: Validate input shape.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := m.Rows()

	// Stage 2: LU decomposition.
	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 3: Prepare result container and workspaces.
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n) // scratch for forward substitution
	x := make([]float64, n) // scratch for backward substitution

	// Stage 4: Compute each column of the inverse.
	var sum, lv, uv, pivot float64
	for col := 0; col < n; col++ {
		// Forward substitution: L·y = e_col.
		for i := 0; i < n; i++ {
			sum = 0
			for k := 0; k < i; k++ {
				lv, _ = L.At(i, k)
				sum += lv * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y.
		for i := n - 1; i >= 0; i-- {
			sum = 0
			for k := i + 1; k < n; k++ {
				uv, _ = U.At(i, k)
				sum += uv * x[k]
			}
			pivot, _ = U.At(i, i)
			if pivot == 0 {
				return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write solution x into column col.
		for i := 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}

	// Stage 5: Return computed inverse.
	return inv, nil
}
