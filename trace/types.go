package trace

import (
	"errors"

	"github.com/katalvlaran/randnla/matrix"
)

// MinSampleCount is the smallest admissible k: the unbiased sample variance
// divides by k−1, so k==1 would leave the variance undefined.
const MinSampleCount = 2

// ErrBadSampleCount is returned when k < MinSampleCount.
// A single sample leaves the variance undefined (division by k−1); callers
// that only need a point estimate should still pass k ≥ 2 and ignore the
// variance rather than receive a silent garbage number.
var ErrBadSampleCount = errors.New("trace: sample count must be >= 2")

// Result holds the outcome of one estimator invocation.
type Result struct {
	// Estimate is the arithmetic mean of the k quadratic forms wᵀAw.
	Estimate float64

	// Variance is the unbiased sample variance of the quadratic forms
	// (sum of squared deviations from the mean, divided by k−1).
	Variance float64

	// Samples is the number of quadratic forms drawn (echoes k).
	Samples int
}

// Options configures the estimator.
//
// Fields:
//   - Seed          — RNG seed; 0 selects the package default stream.
//   - Epsilon       — symmetry tolerance for input validation.
//   - SkipSymmetry  — disable the O(n²) symmetry pre-check (the estimator is
//     only unbiased for symmetric PSD inputs; skip at your own risk, e.g.
//     when the input is symmetric by construction).
type Options struct {
	Seed         int64
	Epsilon      float64
	SkipSymmetry bool
}

// DefaultOptions returns the documented defaults: default seed stream and
// matrix.DefaultEpsilon symmetry tolerance with the check enabled.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		Epsilon:      matrix.DefaultEpsilon,
		SkipSymmetry: false,
	}
}
