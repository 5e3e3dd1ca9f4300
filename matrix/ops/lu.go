// Package ops provides advanced matrix operations for the randnla/matrix package.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/randnla/matrix"
)

// ErrSingular is returned when a zero pivot is encountered during
// decomposition, inversion or solving.
var ErrSingular = errors.New("ops: matrix is singular")

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular).
// Returns matrix.ErrNonSquare if m is not square, ErrSingular on a zero pivot.
// Complexity: O(n³) time, O(n²) memory.
func LU(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input is square.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare L and U.
	L, err := matrix.Identity(n) // unit diagonal
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 3: Execute decomposition.
	var (
		sum, lv, uv, av, uDiag float64
	)
	for i := 0; i < n; i++ {
		// U's row i for columns j >= i.
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				lv, _ = L.At(i, k)
				uv, _ = U.At(k, j)
				sum += lv * uv
			}
			av, _ = m.At(i, j)
			_ = U.Set(i, j, av-sum)
		}
		// L's column i for rows j > i; requires a non-zero pivot U[i][i].
		uDiag, _ = U.At(i, i)
		for j := i + 1; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				lv, _ = L.At(j, k)
				uv, _ = U.At(k, i)
				sum += lv * uv
			}
			av, _ = m.At(j, i)
			if uDiag == 0 {
				return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
			}
			_ = L.Set(j, i, (av-sum)/uDiag)
		}
	}

	// Stage 4: Finalize and return.
	return L, U, nil
}
