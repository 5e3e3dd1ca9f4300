// Package ops provides advanced matrix operations for the randnla/matrix
// package. Solve answers A·x = b via LU decomposition and forward/backward
// substitution; the Newton–Raphson optimizer uses it for the Hessian step.
package ops

import (
	"fmt"

	"github.com/katalvlaran/randnla/matrix"
)

// Solve computes x such that A·x = b for a square matrix A.
// Blueprint:
//
//	Stage 1 (Validate): A square, len(b) == A.Rows().
//	Stage 2 (Decompose): A = L·U via Doolittle.
//	Stage 3 (Execute): forward substitution L·y = b, then back U·x = y.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ErrSingular
// (zero pivot — A is singular or near-singular for this scheme).
// Complexity: O(n³) time, O(n²) memory.
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	// Stage 1: Validate shapes.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 2: Decompose.
	L, U, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 3: Forward substitution L·y = b (unit diagonal on L).
	y := make([]float64, n)
	var sum, lv, uv, pivot float64
	for i := 0; i < n; i++ {
		sum = 0
		for k := 0; k < i; k++ {
			lv, _ = L.At(i, k)
			sum += lv * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution U·x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = 0
		for k := i + 1; k < n; k++ {
			uv, _ = U.At(i, k)
			sum += uv * x[k]
		}
		pivot, _ = U.At(i, i)
		if pivot == 0 {
			return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
