package sweep

import (
	"errors"
	"time"
)

var (
	// ErrEmptyGrid is returned when a driver receives an empty size, power
	// or sample-count list.
	ErrEmptyGrid = errors.New("sweep: empty parameter grid")

	// ErrBadGridValue is returned when a grid entry is non-positive.
	ErrBadGridValue = errors.New("sweep: grid values must be > 0")
)

// Cell status values tabulated in Row.Status.
const (
	// StatusOK — the estimate and ground truth are both valid.
	StatusOK = "ok"

	// StatusInvalid — the cell's parameters were rejected before sampling
	// (e.g. k below the estimator minimum, or k ≤ p).
	StatusInvalid = "invalid-input"

	// StatusDegenerate — the estimate or the ground truth overflowed,
	// underflowed or became NaN.
	StatusDegenerate = "degenerate"
)

// Row is one record of a sweep result table: a single (size | power,
// sample-count) combination with its estimate, ground truth, derived error
// and wall-clock timings. Rows only ever accumulate — nothing mutates a
// row once appended.
type Row struct {
	// Size is the matrix dimension n (trace sweeps; 0 for Schatten rows).
	Size int

	// Power is the Schatten power p (0 for trace rows).
	Power int

	// Samples is the sample count k for the cell.
	Samples int

	// Estimate is the randomized estimate (NaN when Status != StatusOK).
	Estimate float64

	// Truth is the deterministic ground truth (NaN when unavailable).
	Truth float64

	// AbsError is |Estimate − Truth| (NaN when either side is missing).
	AbsError float64

	// Variance is the trace estimator's sample variance (NaN for Schatten).
	Variance float64

	// EstimateTime is the wall-clock duration of the estimator call.
	EstimateTime time.Duration

	// TruthTime is the wall-clock duration of the direct computation.
	TruthTime time.Duration

	// Status is one of StatusOK, StatusInvalid, StatusDegenerate.
	Status string
}

// Options configures a sweep run.
//
// Fields:
//   - Seed    — base seed; every matrix draw and estimator call derives its
//     own stream from it (0 selects the package default).
//   - Workers — number of concurrent cell workers; values < 2 run the grid
//     sequentially. Results are identical for any worker count.
type Options struct {
	Seed    int64
	Workers int
}

// DefaultOptions returns the documented defaults: default seed, sequential
// execution.
func DefaultOptions() Options {
	return Options{Seed: 0, Workers: 1}
}
