package schatten

import "errors"

var (
	// ErrBadPower is returned when the norm power p is not a positive integer.
	ErrBadPower = errors.New("schatten: power must be >= 1")

	// ErrBadSampleCount is returned when k <= p: the binomial normalizer
	// C(k,p) is combinatorially degenerate and the triangular-truncation
	// identity no longer holds.
	ErrBadSampleCount = errors.New("schatten: sample count must exceed power")

	// ErrDegenerate is returned when the computed estimate (or the exact
	// reference) overflows, underflows to an invalid value, or is NaN.
	// Callers tabulate this outcome distinctly from valid-but-extreme results.
	ErrDegenerate = errors.New("schatten: numerically degenerate result")
)

// Options configures the estimator.
//
// Fields:
//   - Seed — RNG seed; 0 selects the package default stream.
type Options struct {
	Seed int64
}

// DefaultOptions returns the documented defaults (default seed stream).
func DefaultOptions() Options {
	return Options{Seed: 0}
}
