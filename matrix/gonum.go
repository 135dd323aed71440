// Package matrix - gonum adapter.
//
// Callers that already build cost tables with gonum.org/v1/gonum/mat
// (distance matrices, score grids, etc.) can hand them to the solver
// without reshaping their data by hand.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a gonum mat.Matrix into a Dense cost matrix.
// Stage 1 (Validate): m must be non-nil.
// Stage 2 (Execute): copy every cell, enforcing the finite-value policy.
//
// Errors: ErrNilMatrix on nil input; ErrNaNInf (wrapped with coordinates)
// when m contains NaN or ±Inf.
//
// Complexity: O(r*c) time and memory.
func FromGonum(m mat.Matrix) (*Dense, error) {
	// Validate argument.
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()

	// Dims are never negative for a well-formed gonum matrix, so NewDense
	// cannot fail here; keep the error path for uniformity.
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			// Numeric policy: only finite costs may be stored.
			if !isFinite(v) {
				return nil, fmt.Errorf("Dense.FromGonum(%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
