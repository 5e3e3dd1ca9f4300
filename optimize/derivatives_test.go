package optimize_test

import (
	"testing"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestGradient verifies central differences on f(x) = x₀² + 3x₁, whose
// gradient at (2,1) is exactly [4, 3].
func TestGradient(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }

	g := optimize.Gradient(f, []float64{2, 1}, optimize.DefaultDiffStep)
	require.Len(t, g, 2)
	assert.InDelta(t, 4.0, g[0], 1e-6)
	assert.InDelta(t, 3.0, g[1], 1e-6)
}

// TestGradient_DoesNotMutate verifies the evaluation point survives intact.
func TestGradient_DoesNotMutate(t *testing.T) {
	f := func(x []float64) float64 { return x[0] * x[1] }
	x := []float64{1.5, -2.5}

	_ = optimize.Gradient(f, x, optimize.DefaultDiffStep)
	assert.Equal(t, []float64{1.5, -2.5}, x)
}

// TestHessian verifies the four-point/three-point stencils on
// f(x) = x₀² + x₀x₁ + 2x₁², whose Hessian is constant [[2,1],[1,4]].
func TestHessian(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + x[0]*x[1] + 2*x[1]*x[1] }

	h := optimize.Hessian(f, []float64{0.3, -0.7}, optimize.DefaultDiffStep)
	expect := [][]float64{{2, 1}, {1, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := h.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, expect[i][j], v, 1e-4, "H[%d][%d]", i, j)
		}
	}

	// Exact symmetry comes from mirroring, not from luck.
	v01, _ := h.At(0, 1)
	v10, _ := h.At(1, 0)
	assert.Equal(t, v01, v10)
}
