package sweep

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/randnla/sampler"
	"github.com/katalvlaran/randnla/schatten"
)

// SchattenSweep runs the Schatten-(2p) estimator over the (power,
// sample-count) grid powers × ks on a single rows×cols Gaussian test
// matrix. The exact reference Σσᵢ^(2p) is computed and timed once per
// power via Jacobi eigenvalues of the Gram matrix.
//
// Degeneracy is expected here: high powers drive both the truth and the
// estimate to ±Inf/NaN. Such cells are tabulated with StatusDegenerate —
// never silently propagated — so the table distinguishes "degenerate" from
// "valid but extreme".
//
// Errors: ErrEmptyGrid, ErrBadGridValue, plus sampler errors from test
// matrix construction.
// Complexity: O(#powers·cols³) references + O(Σ cells) estimation.
func SchattenSweep(rows, cols int, powers, ks []int, opts *Options) ([]Row, error) {
	// Stage 1: resolve options and validate the grid.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("SchattenSweep: shape %dx%d: %w", rows, cols, ErrBadGridValue)
	}
	if len(powers) == 0 || len(ks) == 0 {
		return nil, fmt.Errorf("SchattenSweep: %w", ErrEmptyGrid)
	}
	for _, p := range powers {
		if p < 1 {
			return nil, fmt.Errorf("SchattenSweep: p=%d: %w", p, ErrBadGridValue)
		}
	}
	for _, k := range ks {
		if k < 1 {
			return nil, fmt.Errorf("SchattenSweep: k=%d: %w", k, ErrBadGridValue)
		}
	}

	// Stage 2: one shared test matrix (stream 0) + per-power references.
	b, err := sampler.Matrix(rows, cols, sampler.Derive(o.Seed, 0))
	if err != nil {
		return nil, fmt.Errorf("SchattenSweep: %w", err)
	}

	truths := make([]float64, len(powers))
	truthTimes := make([]time.Duration, len(powers))
	truthOK := make([]bool, len(powers))
	for pi, p := range powers {
		start := time.Now()
		exact, exErr := schatten.Exact(b, p)
		truthTimes[pi] = time.Since(start)
		switch {
		case errors.Is(exErr, schatten.ErrDegenerate):
			// Overflowed reference: tabulated as a NaN truth, the grid goes on.
			truths[pi] = math.NaN()
		case exErr != nil:
			// Anything else (e.g. eigen non-convergence) is a driver failure,
			// not a property of the cell; it must not masquerade as degeneracy.
			return nil, fmt.Errorf("SchattenSweep: p=%d: %w", p, exErr)
		default:
			truths[pi] = exact
			truthOK[pi] = true
		}
	}

	// Stage 3: one independent cell per (power, k); stream ids continue
	// after the matrix stream.
	cells := len(powers) * len(ks)
	out := make([]Row, cells)

	runCells(cells, o.Workers, func(c int) {
		pi, ki := c/len(ks), c%len(ks)
		p, k := powers[pi], ks[ki]

		sopts := schatten.DefaultOptions()
		sopts.Seed = sampler.DeriveSeed(o.Seed, 1+uint64(c))

		start := time.Now()
		est, estErr := schatten.Estimate(b, p, k, &sopts)
		elapsed := time.Since(start)

		row := Row{
			Power:        p,
			Samples:      k,
			Truth:        truths[pi],
			TruthTime:    truthTimes[pi],
			EstimateTime: elapsed,
			Estimate:     math.NaN(),
			AbsError:     math.NaN(),
			Variance:     math.NaN(),
			Status:       StatusOK,
		}
		switch {
		case errors.Is(estErr, schatten.ErrBadSampleCount) || errors.Is(estErr, schatten.ErrBadPower):
			row.Status = StatusInvalid
		case errors.Is(estErr, schatten.ErrDegenerate):
			row.Status = StatusDegenerate
		case estErr != nil:
			row.Status = StatusDegenerate
		default:
			row.Estimate = est
			if truthOK[pi] {
				row.AbsError = math.Abs(est - truths[pi])
			} else {
				row.Status = StatusDegenerate // estimate fine, reference is not
			}
		}
		out[c] = row
	})

	return out, nil
}
