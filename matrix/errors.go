// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. No function in this
// package panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r < 0 or
	// c < 0). Zero-sized matrices are legal and do NOT trigger it.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows indicates that FromRows received rows of unequal length:
	// a cost matrix must be rectangular.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, FromRows, FromGonum).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
