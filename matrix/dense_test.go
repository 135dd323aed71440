package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlassign/matrix"
)

// TestNewDense_Shape verifies the shape contract: negative dimensions are
// rejected, zero-sized matrices are legal.
func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(-1, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative cols must error")

	d, err := matrix.NewDense(0, 4)
	require.NoError(t, err, "zero rows are a legal degenerate shape")
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, 4, d.Cols())

	d, err = matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	// Fresh matrices are zero-initialized.
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDense_AtSet covers the round trip and the bounds sentinels.
func TestDense_AtSet(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 0, 3.5))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row beyond range")
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative column")
	assert.ErrorIs(t, d.Set(-1, 0, 1), matrix.ErrOutOfRange, "negative row")
	assert.ErrorIs(t, d.Set(0, 2, 1), matrix.ErrOutOfRange, "column beyond range")
}

// TestDense_Set_NumericPolicy verifies that NaN/±Inf never enter via Set.
func TestDense_Set_NumericPolicy(t *testing.T) {
	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	// The rejected write must not have landed.
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestFromRows covers the copying constructor: values, ragged input,
// non-finite input, and degenerate shapes.
func TestFromRows(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows, "ragged rows must error")

	_, err = matrix.FromRows([][]float64{{1, math.Inf(-1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "-Inf must error on ingestion")

	d, err = matrix.FromRows(nil)
	require.NoError(t, err, "nil outer slice is the 0×0 matrix")
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, 0, d.Cols())

	d, err = matrix.FromRows([][]float64{{}, {}})
	require.NoError(t, err, "rows of length zero yield r×0")
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 0, d.Cols())
}

// TestFromRows_CopiesInput verifies the constructor deep-copies: mutating
// the source afterwards must not leak into the matrix.
func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}}
	d, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromRows must copy, not alias")
}

// TestDense_Row verifies the no-copy row view: correct bounds sentinel,
// correct width, and aliasing with the backing storage.
func TestDense_Row(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = d.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	// A Row view aliases the matrix: writes through it are visible in At.
	row[0] = 7
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestDense_Clone verifies deep-copy independence.
func TestDense_Clone(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

// TestDense_String pins the debug rendering.
func TestDense_String(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", d.String())
}
