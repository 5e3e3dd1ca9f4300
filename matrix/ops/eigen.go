// Package ops provides advanced matrix operations for the randnla/matrix
// package. Eigen computes all eigenvalues and eigenvectors of a real
// symmetric matrix using the Jacobi rotation method; the estimator packages
// use it to obtain exact singular-value ground truth via eig(BᵀB).
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/randnla/matrix"
)

// ErrEigenFailed is returned if Jacobi does not converge within maxIter sweeps.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// DefaultEigenTol is the off-diagonal convergence threshold used when the
// caller passes tol <= 0.
const DefaultEigenTol = 1e-10

// DefaultEigenMaxIter caps Jacobi sweeps when the caller passes maxIter <= 0.
// One sweep is worth n² rotations, so the rotation budget scales with the
// matrix order instead of starving large inputs.
const DefaultEigenMaxIter = 1000

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues and a matrix Q whose columns are eigenvectors.
//
// Blueprint:
//
//	Stage 1 (Validate): m square and symmetric within tol.
//	Stage 2 (Prepare): working copy A, Q = identity.
//	Stage 3 (Execute): rotate away the largest off-diagonal entry until
//	                   max|A[p][q]| < tol or the rotation budget is exhausted.
//	                   maxIter counts sweeps; a sweep is n² rotations, so the
//	                   total budget is maxIter·n² rotations.
//	Stage 4 (Finalize): eigenvalues are the diagonal of A.
//
// Errors: matrix.ErrNonSquare, matrix.ErrAsymmetry, ErrEigenFailed.
// Complexity: O(n²) pivot search per rotation, worst-case O(maxIter·n²)
// rotations; O(n²) memory.
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	// Stage 1: Validate input.
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if err := matrix.ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare working copy A and rotation accumulator Q.
	A := m.Clone()
	Q, err := matrix.Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	// Stage 3: Execute Jacobi rotations.
	var (
		p, q               int     // pivot indices
		maxOff             float64 // magnitude of largest off-diagonal entry
		theta, t, c, s     float64 // rotation parameters
		off, app, aqq, apq float64 // temporaries
		converged          bool
	)
	budget := maxIter * n * n // rotations, not sweeps
	for iter := 0; iter < budget; iter++ {
		// Locate the largest off-diagonal |A[p][q]| in fixed i→j order.
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ = A.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff = math.Abs(off)
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		// Compute the rotation that annihilates A[p][q].
		app, _ = A.At(p, p)
		aqq, _ = A.At(q, q)
		apq, _ = A.At(p, q)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to rows/columns p and q of A.
		var aip, aiq float64
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, _ = A.At(i, p)
			aiq, _ = A.At(i, q)
			_ = A.Set(i, p, c*aip-s*aiq)
			_ = A.Set(p, i, c*aip-s*aiq)
			_ = A.Set(i, q, s*aip+c*aiq)
			_ = A.Set(q, i, s*aip+c*aiq)
		}
		_ = A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		_ = A.Set(p, q, 0)
		_ = A.Set(q, p, 0)

		// Accumulate the rotation into Q.
		var qip, qiq float64
		for i := 0; i < n; i++ {
			qip, _ = Q.At(i, p)
			qiq, _ = Q.At(i, q)
			_ = Q.Set(i, p, c*qip-s*qiq)
			_ = Q.Set(i, q, s*qip+c*qiq)
		}
	}
	if !converged {
		// Re-check the final state: the last rotation may already have
		// pushed every off-diagonal entry below tol.
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ = A.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff = math.Abs(off)
				}
			}
		}
		if maxOff >= tol {
			return nil, nil, ErrEigenFailed
		}
	}

	// Stage 4: Finalize eigenvalues from the diagonal.
	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = A.At(i, i)
	}

	return eigs, Q, nil
}
