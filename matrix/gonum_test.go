package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlassign/matrix"
)

// TestFromGonum verifies the adapter copies a gonum matrix cell-for-cell.
func TestFromGonum(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, src.At(i, j), v)
		}
	}
}

// TestFromGonum_CopiesInput verifies the adapter deep-copies: mutating the
// gonum source afterwards must not leak into the Dense.
func TestFromGonum_CopiesInput(t *testing.T) {
	src := mat.NewDense(1, 2, []float64{1, 2})
	d, err := matrix.FromGonum(src)
	require.NoError(t, err)

	src.Set(0, 0, 99)
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromGonum must copy, not alias")
}

// TestFromGonum_Validation covers the nil and non-finite sentinels.
func TestFromGonum_Validation(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	src := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(src)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
