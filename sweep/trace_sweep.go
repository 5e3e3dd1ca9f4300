package sweep

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/sampler"
	"github.com/katalvlaran/randnla/trace"
)

// TraceSweep runs the Hutchinson estimator over the (size, sample-count)
// grid sizes × ks. For each size n it draws one symmetric PSD test matrix
// (Gaussian Gram construction), times the direct diagonal-sum ground truth
// once, and then times one estimator call per k.
//
// Blueprint:
//
//	Stage 1 (Validate): non-empty grids, strictly positive entries.
//	Stage 2 (Prepare):  per-size matrices + timed ground truths, drawn from
//	                    seed-derived streams (one stream per size).
//	Stage 3 (Execute):  one cell per (size, k); each cell derives its own
//	                    estimator seed, so any worker count and execution
//	                    order produce identical rows.
//
// Cell failures (e.g. k below the estimator minimum) become rows with
// StatusInvalid rather than aborting the grid.
//
// Errors: ErrEmptyGrid, ErrBadGridValue, plus matrix/sampler errors from
// test-matrix construction.
// Complexity: O(Σₙ n³) preparation + O(Σₙ Σₖ k·n²) estimation.
func TraceSweep(sizes, ks []int, opts *Options) ([]Row, error) {
	// Stage 1: resolve options and validate the grid.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(sizes) == 0 || len(ks) == 0 {
		return nil, fmt.Errorf("TraceSweep: %w", ErrEmptyGrid)
	}
	for _, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("TraceSweep: size=%d: %w", n, ErrBadGridValue)
		}
	}
	for _, k := range ks {
		if k < 1 {
			return nil, fmt.Errorf("TraceSweep: k=%d: %w", k, ErrBadGridValue)
		}
	}

	// Stage 2: per-size inputs and ground truths (sequential, seed-derived).
	mats := make([]*matrix.Dense, len(sizes))
	truths := make([]float64, len(sizes))
	truthTimes := make([]time.Duration, len(sizes))
	for si, n := range sizes {
		rng := sampler.Derive(o.Seed, uint64(si))
		a, err := sampler.SymmetricPSD(n, rng)
		if err != nil {
			return nil, fmt.Errorf("TraceSweep: %w", err)
		}
		mats[si] = a

		start := time.Now()
		tr, err := matrix.Trace(a)
		truthTimes[si] = time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("TraceSweep: %w", err)
		}
		truths[si] = tr
	}

	// Stage 3: one independent cell per (size, k). Cell streams start after
	// the per-size streams so the two derivations never collide.
	cells := len(sizes) * len(ks)
	rows := make([]Row, cells)
	streamBase := uint64(len(sizes))

	runCells(cells, o.Workers, func(c int) {
		si, ki := c/len(ks), c%len(ks)
		n, k := sizes[si], ks[ki]

		topts := trace.DefaultOptions()
		topts.Seed = sampler.DeriveSeed(o.Seed, streamBase+uint64(c))
		topts.SkipSymmetry = true // PSD by construction; skip the O(n²) check

		start := time.Now()
		res, err := trace.Estimate(mats[si], k, &topts)
		elapsed := time.Since(start)

		row := Row{
			Size:         n,
			Samples:      k,
			Truth:        truths[si],
			TruthTime:    truthTimes[si],
			EstimateTime: elapsed,
			Estimate:     math.NaN(),
			AbsError:     math.NaN(),
			Variance:     math.NaN(),
			Status:       StatusOK,
		}
		switch {
		case errors.Is(err, trace.ErrBadSampleCount):
			row.Status = StatusInvalid
		case err != nil:
			row.Status = StatusDegenerate
		default:
			row.Estimate = res.Estimate
			row.Variance = res.Variance
			row.AbsError = math.Abs(res.Estimate - truths[si])
		}
		rows[c] = row
	})

	return rows, nil
}
