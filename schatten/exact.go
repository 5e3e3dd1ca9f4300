package schatten

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/matrix/ops"
)

// Exact computes Σᵢ σᵢ(B)^(2p) deterministically: the squared singular
// values of B are the eigenvalues of the Gram matrix BᵀB, so the target is
// Σᵢ λᵢ(BᵀB)^p. The sweep drivers use this as ground truth for the
// randomized estimate.
//
// Blueprint:
//
//	Stage 1 (Validate): B non-nil and finite; p >= 1.
//	Stage 2 (Gram):     G = BᵀB (n×n, symmetric PSD).
//	Stage 3 (Eigen):    Jacobi eigenvalues of G.
//	Stage 4 (Finalize): Σ max(λᵢ, 0)^p; reject non-finite totals with
//	                    ErrDegenerate. Tiny negative eigenvalues are rounding
//	                    artifacts of a PSD matrix and are clamped to zero.
//
// Errors: ErrBadPower, ErrDegenerate, matrix.ErrNaNInf, ops.ErrEigenFailed.
// Complexity: O(m·n² + n³) time, O(n²) space.
func Exact(b matrix.Matrix, p int) (float64, error) {
	// Stage 1: Validate.
	if p < 1 {
		return 0, fmt.Errorf("Exact: p=%d: %w", p, ErrBadPower)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("Exact: %w", err)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return 0, fmt.Errorf("Exact: %w", err)
	}

	// Stage 2: Gram matrix.
	bt, err := matrix.Transpose(b)
	if err != nil {
		return 0, fmt.Errorf("Exact: %w", err)
	}
	g, err := matrix.Mul(bt, b)
	if err != nil {
		return 0, fmt.Errorf("Exact: %w", err)
	}

	// Stage 3: eigenvalues of the symmetric Gram matrix.
	eigs, _, err := ops.Eigen(g, 0, 0) // package defaults for tol/maxIter
	if err != nil {
		return 0, fmt.Errorf("Exact: %w", err)
	}

	// Stage 4: sum of p-th powers of the (clamped) eigenvalues.
	var sum float64
	for _, lambda := range eigs {
		if lambda < 0 {
			lambda = 0 // PSD up to rounding noise
		}
		sum += math.Pow(lambda, float64(p))
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("Exact: %w", ErrDegenerate)
	}

	return sum, nil
}
