package optimize

import (
	"fmt"

	"github.com/katalvlaran/randnla/matrix"
)

// LeastSquares builds the study's canonical objective from a data matrix A
// (m×n) and a target vector b (length m):
//
//	f(x) = Σᵢ (aᵢ·x − bᵢ)²  —  the aggregate objective for Newton/GD,
//	fᵢ(x) = (aᵢ·x − bᵢ)²    —  per-row contributions for SGD batching.
//
// The objective is strictly convex whenever A has full column rank, which
// makes it the standard correctness probe for all three optimizers.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch (rows of A vs len(b)).
// Complexity of one aggregate evaluation: O(m·n).
func LeastSquares(a matrix.Matrix, b []float64) (Objective, []Objective, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, fmt.Errorf("LeastSquares: %w", err)
	}
	m, n := a.Rows(), a.Cols()
	if len(b) != m {
		return nil, nil, fmt.Errorf("LeastSquares: rows=%d len(b)=%d: %w", m, len(b), ErrDimensionMismatch)
	}

	// Snapshot rows once so the closures never touch the Matrix interface
	// in hot differentiation loops.
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		var v float64
		for j := 0; j < n; j++ {
			v, _ = a.At(i, j) // bounds valid by construction
			row[j] = v
		}
		rows[i] = row
	}
	targets := make([]float64, m)
	copy(targets, b)

	residual := func(row []float64, target float64, x []float64) float64 {
		var dot float64
		for j := 0; j < len(row) && j < len(x); j++ {
			dot += row[j] * x[j]
		}

		return dot - target
	}

	aggregate := func(x []float64) float64 {
		var sum, r float64
		for i := 0; i < m; i++ {
			r = residual(rows[i], targets[i], x)
			sum += r * r
		}

		return sum
	}

	perSample := make([]Objective, m)
	for i := 0; i < m; i++ {
		row, target := rows[i], targets[i]
		perSample[i] = func(x []float64) float64 {
			r := residual(row, target, x)

			return r * r
		}
	}

	return aggregate, perSample, nil
}
