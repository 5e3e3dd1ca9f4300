package trace

import (
	"fmt"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/sampler"
)

// Estimate produces an unbiased stochastic estimate of trace(A) from k
// random quadratic forms, together with the unbiased sample variance of
// those forms.
//
// Blueprint:
//
//	Stage 1 (Validate): A square, finite, symmetric within Options.Epsilon
//	                    (unless SkipSymmetry); k >= MinSampleCount.
//	Stage 2 (Execute): for each of k trials draw w ~ N(0, I_n), accumulate
//	                   q_i = wᵀAw.
//	Stage 3 (Finalize): mean of q_i is the estimate; Σ(q_i − mean)²/(k−1)
//	                    is the variance.
//
// A nil opts selects DefaultOptions. Same seed and k ⇒ bit-identical output.
//
// Errors:
//   - ErrBadSampleCount        — k < 2.
//   - matrix.ErrNonSquare      — A is rectangular.
//   - matrix.ErrAsymmetry      — A violates symmetry within Epsilon.
//   - matrix.ErrNaNInf         — A contains non-finite entries.
//
// Complexity: O(k·n²) time, O(k) extra space for the sample buffer.
func Estimate(a matrix.Matrix, k int, opts *Options) (Result, error) {
	// Stage 1: resolve options and validate.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if k < MinSampleCount {
		return Result{}, fmt.Errorf("Estimate: k=%d: %w", k, ErrBadSampleCount)
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Result{}, fmt.Errorf("Estimate: %w", err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return Result{}, fmt.Errorf("Estimate: %w", err)
	}
	if !o.SkipSymmetry {
		if err := matrix.ValidateSymmetric(a, o.Epsilon); err != nil {
			return Result{}, fmt.Errorf("Estimate: %w", err)
		}
	}

	// Stage 2: draw k quadratic forms. The sample buffer keeps the variance
	// computation two-pass and numerically uneventful.
	n := a.Rows()
	rng := sampler.New(o.Seed)
	forms := make([]float64, k)
	var sum float64
	for i := 0; i < k; i++ {
		w, err := sampler.Vector(n, rng)
		if err != nil {
			return Result{}, fmt.Errorf("Estimate: %w", err)
		}
		aw, err := matrix.MatVec(a, w)
		if err != nil {
			return Result{}, fmt.Errorf("Estimate: %w", err)
		}
		q, err := matrix.Dot(w, aw)
		if err != nil {
			return Result{}, fmt.Errorf("Estimate: %w", err)
		}
		forms[i] = q
		sum += q
	}

	// Stage 3: mean and unbiased sample variance.
	mean := sum / float64(k)
	var ssd, d float64
	for i := 0; i < k; i++ {
		d = forms[i] - mean
		ssd += d * d
	}

	return Result{
		Estimate: mean,
		Variance: ssd / float64(k-1),
		Samples:  k,
	}, nil
}
