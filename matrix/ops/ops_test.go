package ops_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/matrix/ops"
	"github.com/katalvlaran/randnla/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestLU_Recompose verifies L·U reproduces the input and that L carries a
// unit diagonal.
func TestLU_Recompose(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 3, 0},
		{6, 3, 1},
		{0, 2, 5},
	})

	l, u, err := ops.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		d, _ := l.At(i, i)
		assert.Equal(t, 1.0, d, "L diagonal must be unit")
	}

	prod, err := matrix.Mul(l, u)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := a.At(i, j)
			got, _ := prod.At(i, j)
			assert.InDelta(t, want, got, 1e-12, "L·U[%d][%d]", i, j)
		}
	}
}

// TestLU_Singular verifies the zero-pivot rejection path.
func TestLU_Singular(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 0},
		{1, 1},
	})

	_, _, err := ops.LU(a)
	assert.ErrorIs(t, err, ops.ErrSingular)
}

// TestSolve checks a hand-computed 2×2 system and the length guard.
func TestSolve(t *testing.T) {
	// [2 1; 1 3]·x = [3; 5] ⇒ x = [0.8, 1.4]
	a := mustDense(t, [][]float64{{2, 1}, {1, 3}})

	x, err := ops.Solve(a, []float64{3, 5})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 0.8, x[0], 1e-12)
	assert.InDelta(t, 1.4, x[1], 1e-12)

	_, err = ops.Solve(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolve_Singular verifies that a rank-deficient system surfaces
// ErrSingular instead of garbage.
func TestSolve_Singular(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2},
		{2, 4},
	})

	_, err := ops.Solve(a, []float64{1, 2})
	assert.ErrorIs(t, err, ops.ErrSingular)
}

// TestInverse verifies A·A⁻¹ = I on a well-conditioned input.
func TestInverse(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	inv, err := ops.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := prod.At(i, j)
			assert.InDelta(t, want, got, 1e-12, "A·A⁻¹[%d][%d]", i, j)
		}
	}
}

// TestEigen_Diagonal verifies that an already-diagonal matrix converges
// immediately with its diagonal as the spectrum.
func TestEigen_Diagonal(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 0, 0},
		{0, 9, 0},
		{0, 0, 1},
	})

	eigs, q, err := ops.Eigen(a, 0, 0)
	require.NoError(t, err)
	require.Len(t, eigs, 3)
	require.NotNil(t, q)

	sort.Float64s(eigs)
	assert.InDelta(t, 1.0, eigs[0], 1e-10)
	assert.InDelta(t, 4.0, eigs[1], 1e-10)
	assert.InDelta(t, 9.0, eigs[2], 1e-10)
}

// TestEigen_Symmetric2x2 verifies the known spectrum {1, 3} of
// [[2,1],[1,2]] and the orthonormality of the returned eigenvectors.
func TestEigen_Symmetric2x2(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	eigs, q, err := ops.Eigen(a, 0, 0)
	require.NoError(t, err)
	require.Len(t, eigs, 2)

	sort.Float64s(eigs)
	assert.InDelta(t, 1.0, eigs[0], 1e-9)
	assert.InDelta(t, 3.0, eigs[1], 1e-9)

	// QᵀQ = I: columns are orthonormal.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	gram, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := gram.At(i, j)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

// TestEigen_TraceInvariant verifies Σλᵢ equals the trace on a dense
// symmetric input (rotation invariant of the Jacobi scheme).
func TestEigen_TraceInvariant(t *testing.T) {
	a := mustDense(t, [][]float64{
		{5, 2, 1},
		{2, 6, 3},
		{1, 3, 7},
	})

	eigs, _, err := ops.Eigen(a, 0, 0)
	require.NoError(t, err)

	sum := 0.0
	for _, l := range eigs {
		sum += l
	}
	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	assert.InDelta(t, tr, sum, 1e-8)
	assert.False(t, math.IsNaN(sum))
}

// TestEigen_ModerateOrder verifies the default rotation budget carries a
// dense 32×32 symmetric matrix to convergence: classical Jacobi needs O(n²)
// rotations per sweep, so the cap must scale with the matrix order.
func TestEigen_ModerateOrder(t *testing.T) {
	a, err := sampler.Symmetric(32, sampler.New(5))
	require.NoError(t, err)

	eigs, _, err := ops.Eigen(a, 0, 0)
	require.NoError(t, err, "default budget must converge at order 32")
	require.Len(t, eigs, 32)

	sum := 0.0
	for _, l := range eigs {
		sum += l
	}
	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	assert.InDelta(t, tr, sum, 1e-6, "rotations preserve the trace")
}

// TestEigen_RejectsAsymmetric verifies the symmetry precondition.
func TestEigen_RejectsAsymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, _, err := ops.Eigen(a, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}
