// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Enforce the numeric policy (rejection of NaN/±Inf) at every ingestion
//     point, so downstream consumers can rely on finite data.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c);
//     FromRows: O(r*c) copy.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method tags used in error wrappers, kept as constants for grep-ability.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, e.g. "Dense.Set(2,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dense is a row-major matrix of float64 values.
//   - r, c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // contiguous row-major storage, len == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows ≥ 0 and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
//
// Zero-sized matrices are accepted: an assignment problem with no workers
// or no jobs has a well-defined (empty) solution.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions: negative counts are a shape-contract violation.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice (len 0 when either dimension is 0).
	data := make([]float64, rows*cols)

	// Return initialized Dense.
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense by copying a slice-of-slices cost table.
// Stage 1 (Validate): every row must have the same length (ErrRaggedRows)
// and every value must be finite (ErrNaNInf).
// Stage 2 (Execute): copy each row into the flat buffer.
//
// An empty outer slice yields a 0×0 matrix; rows of length 0 yield r×0.
//
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	var row []float64
	for i, row = range rows {
		// All rows must match the width of the first one.
		if len(row) != c {
			return nil, fmt.Errorf("Dense.FromRows: row %d has %d values, want %d: %w",
				i, len(row), c, ErrRaggedRows)
		}
		// Enforce the numeric policy on ingestion.
		for j = 0; j < c; j++ {
			if !isFinite(row[j]) {
				return nil, fmt.Errorf("Dense.FromRows(%d,%d)=%v: %w", i, j, row[j], ErrNaNInf)
			}
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange (wrapped) on invalid indices; ErrNaNInf (wrapped)
// when v violates the finite-value policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	// Numeric policy: only finite costs may be stored.
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy view of row i as a []float64 of length Cols().
// Mutations through the returned slice are visible in the matrix and
// bypass the Set-time numeric policy; callers that write through a view
// own the finiteness guarantee.
// Errors: ErrOutOfRange (wrapped) on invalid row index.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
