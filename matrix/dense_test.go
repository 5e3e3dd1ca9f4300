package matrix_test

import (
	"testing"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected
// with ErrBadShape before any allocation.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative cols must error")
}

// TestDense_AtSet exercises bounds checking and round-tripping of Set/At.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v, "Set/At must round-trip")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row out of range must error")
	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "col out of range must error")
}

// TestNewDenseFromRows covers construction from literals and the ragged-row
// rejection path.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must error")

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty input must error")
}

// TestDense_CloneIndependence verifies Clone yields a detached deep copy.
func TestDense_CloneIndependence(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	require.NoError(t, m.Set(0, 0, 99))
	v, _ := c.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the original must not affect the clone")
}

// TestDense_Row verifies row extraction and its bounds check.
func TestDense_Row(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
