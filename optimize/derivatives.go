// Package optimize - numerical differentiation kernels.
//
// Central differences only: first derivatives via (f(x+h)−f(x−h))/2h,
// second derivatives via the standard four-point (off-diagonal) and
// three-point (diagonal) stencils. Deterministic evaluation order; the
// probe point is a single reusable buffer, so a gradient costs exactly 2n
// objective evaluations and a Hessian 2n²+2 (n diagonal stencils reuse the
// center value).
package optimize

import (
	"math"

	"github.com/katalvlaran/randnla/matrix"
)

// DefaultDiffStep is the finite-difference step h used when an options
// struct leaves DiffStep at zero. Chosen near cbrt(machine epsilon), the
// usual bias/round-off compromise for central differences.
const DefaultDiffStep = 1e-5

// Gradient approximates ∇f(x) by central differences with step h.
// The input x is never mutated; the returned slice is freshly allocated.
// Complexity: 2n objective evaluations, O(n) space.
func Gradient(f Objective, x []float64, h float64) []float64 {
	n := len(x)
	g := make([]float64, n)
	probe := make([]float64, n)
	copy(probe, x)

	for i := 0; i < n; i++ {
		orig := probe[i]
		probe[i] = orig + h
		fp := f(probe)
		probe[i] = orig - h
		fm := f(probe)
		probe[i] = orig // restore before moving on
		g[i] = (fp - fm) / (2 * h)
	}

	return g
}

// Hessian approximates the symmetric matrix of second derivatives of f at x
// by central differences with step h. Only the upper triangle is computed;
// the lower triangle is mirrored, so the result is symmetric by construction.
// Complexity: O(n²) objective evaluations, O(n²) space.
func Hessian(f Objective, x []float64, h float64) *matrix.Dense {
	n := len(x)
	hess, _ := matrix.NewDense(n, n) // n >= 1 enforced by callers
	probe := make([]float64, n)
	copy(probe, x)

	fc := f(x) // shared center evaluation for the diagonal stencils
	h2 := h * h

	var fpp, fpm, fmp, fmm float64
	for i := 0; i < n; i++ {
		// Diagonal: (f(x+h·eᵢ) − 2f(x) + f(x−h·eᵢ)) / h².
		oi := probe[i]
		probe[i] = oi + h
		fpp = f(probe)
		probe[i] = oi - h
		fmm = f(probe)
		probe[i] = oi
		_ = hess.Set(i, i, (fpp-2*fc+fmm)/h2)

		// Off-diagonal: four-point stencil, mirrored into (j,i).
		for j := i + 1; j < n; j++ {
			oj := probe[j]

			probe[i], probe[j] = oi+h, oj+h
			fpp = f(probe)
			probe[j] = oj - h
			fpm = f(probe)
			probe[i] = oi - h
			fmm = f(probe)
			probe[j] = oj + h
			fmp = f(probe)

			probe[i], probe[j] = oi, oj // restore

			v := (fpp - fpm - fmp + fmm) / (4 * h2)
			_ = hess.Set(i, j, v)
			_ = hess.Set(j, i, v)
		}
	}

	return hess
}

// euclideanNorm returns ‖v‖₂. Complexity: O(n).
func euclideanNorm(v []float64) float64 {
	var sq float64
	for _, x := range v {
		sq += x * x
	}

	return math.Sqrt(sq)
}
