package metrics

import (
	"errors"
	"math"
)

var (
	// ErrLengthMismatch is returned when the estimated and true sequences
	// differ in length.
	ErrLengthMismatch = errors.New("metrics: sequence length mismatch")

	// ErrEmptyInput is returned when both sequences are empty; every metric
	// here divides by the sequence length.
	ErrEmptyInput = errors.New("metrics: empty input")
)

// validate checks the shared contract of all metrics in this package.
func validate(est, truth []float64) error {
	if len(est) != len(truth) {
		return ErrLengthMismatch
	}
	if len(est) == 0 {
		return ErrEmptyInput
	}

	return nil
}

// AbsErrors returns the elementwise absolute error |estᵢ − truthᵢ|.
// Errors: ErrLengthMismatch, ErrEmptyInput.
// Complexity: O(n).
func AbsErrors(est, truth []float64) ([]float64, error) {
	if err := validate(est, truth); err != nil {
		return nil, err
	}

	out := make([]float64, len(est))
	for i := range est {
		out[i] = math.Abs(est[i] - truth[i])
	}

	return out, nil
}

// MeanAbsError returns the mean of the elementwise absolute errors.
// Errors: ErrLengthMismatch, ErrEmptyInput.
// Complexity: O(n).
func MeanAbsError(est, truth []float64) (float64, error) {
	abs, err := AbsErrors(est, truth)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range abs {
		sum += v
	}

	return sum / float64(len(abs)), nil
}

// PerElementRMSE returns, for each element, sqrt((estᵢ − truthᵢ)²/n) where
// n is the sequence length. This is the literal quantity the original
// study tabulated — NOT the conventional aggregate RMSE; see the package
// doc and RMSE below.
// Errors: ErrLengthMismatch, ErrEmptyInput.
// Complexity: O(n).
func PerElementRMSE(est, truth []float64) ([]float64, error) {
	if err := validate(est, truth); err != nil {
		return nil, err
	}

	n := float64(len(est))
	out := make([]float64, len(est))
	var d float64
	for i := range est {
		d = est[i] - truth[i]
		out[i] = math.Sqrt(d * d / n)
	}

	return out, nil
}

// RMSE returns the conventional aggregate root-mean-squared error
// sqrt(Σ(estᵢ − truthᵢ)²/n).
// Errors: ErrLengthMismatch, ErrEmptyInput.
// Complexity: O(n).
func RMSE(est, truth []float64) (float64, error) {
	if err := validate(est, truth); err != nil {
		return 0, err
	}

	var sum, d float64
	for i := range est {
		d = est[i] - truth[i]
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(est))), nil
}
