package trace_test

import (
	"testing"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestEstimate_Identity verifies the estimator concentrates on n for the
// identity matrix: E[wᵀIw] = E[‖w‖²] = n.
func TestEstimate_Identity(t *testing.T) {
	const n, k = 10, 1000
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	opts := trace.DefaultOptions()
	opts.Seed = 12345
	res, err := trace.Estimate(id, k, &opts)
	require.NoError(t, err)

	assert.InDelta(t, float64(n), res.Estimate, 1.0,
		"identity trace estimate must land near n")
	assert.Equal(t, k, res.Samples)
	assert.Greater(t, res.Variance, 0.0)
}

// TestEstimate_Diagonal verifies the diag(4,9) reference case: with a
// large sample budget the estimate lands near the true trace 13.
func TestEstimate_Diagonal(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 0}, {0, 9}})

	opts := trace.DefaultOptions()
	opts.Seed = 777
	res, err := trace.Estimate(a, 1000, &opts)
	require.NoError(t, err)

	assert.InDelta(t, 13.0, res.Estimate, 3.0)
}

// TestEstimate_Variance checks the unbiased sample variance lands near the
// analytic Var[wᵀAw] = 2·Σaᵢᵢ² = 194 for diag(4,9).
func TestEstimate_Variance(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 0}, {0, 9}})

	opts := trace.DefaultOptions()
	opts.Seed = 31
	res, err := trace.Estimate(a, 2000, &opts)
	require.NoError(t, err)

	assert.InDelta(t, 194.0, res.Variance, 120.0)
}

// TestEstimate_Deterministic verifies bit-identical results for equal seeds
// and diverging results for different seeds.
func TestEstimate_Deterministic(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 0}, {0, 9}})

	opts := trace.DefaultOptions()
	opts.Seed = 5
	first, err := trace.Estimate(a, 64, &opts)
	require.NoError(t, err)
	second, err := trace.Estimate(a, 64, &opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the full result")

	opts.Seed = 6
	third, err := trace.Estimate(a, 64, &opts)
	require.NoError(t, err)
	assert.NotEqual(t, first.Estimate, third.Estimate)
}

// TestEstimate_BadSampleCount verifies k=1 is rejected: the unbiased
// variance would divide by zero.
func TestEstimate_BadSampleCount(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})

	_, err := trace.Estimate(a, 1, nil)
	assert.ErrorIs(t, err, trace.ErrBadSampleCount)

	_, err = trace.Estimate(a, 0, nil)
	assert.ErrorIs(t, err, trace.ErrBadSampleCount)
}

// TestEstimate_InputValidation covers the non-square, asymmetric, and
// non-finite rejection paths, plus the SkipSymmetry escape hatch.
func TestEstimate_InputValidation(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 2, 3}})
	_, err := trace.Estimate(rect, 8, nil)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	asym := mustDense(t, [][]float64{{1, 5}, {0, 1}})
	_, err = trace.Estimate(asym, 8, nil)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	opts := trace.DefaultOptions()
	opts.SkipSymmetry = true
	_, err = trace.Estimate(asym, 8, &opts)
	assert.NoError(t, err, "SkipSymmetry must bypass the symmetry check")

	_, err = trace.Estimate(nil, 8, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
