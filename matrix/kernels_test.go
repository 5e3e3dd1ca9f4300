package matrix_test

import (
	"testing"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestAddSub verifies elementwise addition/subtraction and the shape guard.
func TestAddSub(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(1, 1)
	assert.Equal(t, 44.0, v)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	v, _ = diff.At(0, 0)
	assert.Equal(t, 9.0, v)

	c := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Add(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul verifies matrix multiplication against a hand-computed product
// and the inner-dimension guard.
func TestMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}}) // 2x2
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}}) // 2x2

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// [1 2; 3 4] * [5 6; 7 8] = [19 22; 43 50]
	expect := [][]float64{{19, 22}, {43, 50}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := c.At(i, j)
			assert.Equal(t, expect[i][j], v, "C[%d][%d]", i, j)
		}
	}
}

// TestMul_InnerMismatch verifies the inner-dimension guard separately.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})       // 2x2
	b := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	c := mustDense(t, [][]float64{{1}, {2}, {3}})        // 3x1

	_, err := matrix.Mul(b, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "3 cols vs 2 rows must error")

	prod, err := matrix.Mul(b, c) // 2x3 * 3x1 = 2x1
	require.NoError(t, err)
	v, _ := prod.At(0, 0)
	assert.Equal(t, 14.0, v) // 1+4+9
}

// TestTransposeScale verifies Transpose and Scale round-trips.
func TestTransposeScale(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	v, _ := at.At(2, 1)
	assert.Equal(t, 6.0, v)

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	v, _ = s.At(1, 2)
	assert.Equal(t, 12.0, v)
}

// TestMatVec verifies A·x and its length guard.
func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDot verifies the inner product and its guards.
func TestDot(t *testing.T) {
	v, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, v)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Dot(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
