// Package hungarian defines result types, configuration options and
// sentinel errors for the rectangular assignment solver.
//
// The solver matches n workers to m jobs over a dense cost matrix,
// minimizing total cost. When n ≠ m the smaller side is matched optimally
// and the surplus of the larger side stays unassigned.
//
// Options:
//
//	– ForbiddenThreshold: cells with cost ≥ this value are treated as
//	  forbidden pairings and never appear in the result.
//	  Default is +Inf (no cell is forbidden).
//
// Errors (sentinel):
//
//	– ErrNilMatrix      if the provided cost matrix is nil.
//	– ErrNonFiniteCost  if any input cost is NaN or ±Inf.
//	– ErrBadThreshold   if WithForbiddenThreshold is given NaN (panic).
package hungarian

import (
	"errors"
	"math"
)

// Unassigned marks a job (or worker) without a partner in the returned
// assignment. It is an explicit sentinel value, deliberately outside the
// valid index range [0, n).
const Unassigned = -1

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil *matrix.Dense was passed to Solve.
	ErrNilMatrix = errors.New("hungarian: cost matrix is nil")

	// ErrNonFiniteCost indicates that an input cost is NaN or ±Inf.
	// The padding sentinel's ordering guarantee (sentinel > any real cost)
	// breaks when inputs are unbounded, so such matrices are rejected.
	ErrNonFiniteCost = errors.New("hungarian: non-finite cost encountered")

	// ErrBadThreshold indicates that ForbiddenThreshold was set to NaN,
	// which would make the forbidden-cell comparison meaningless.
	ErrBadThreshold = errors.New("hungarian: ForbiddenThreshold must not be NaN")
)

// Result holds the outcome of one Solve call.
type Result struct {
	// TotalCost is the sum of the costs of all matched (job, worker) pairs.
	TotalCost float64

	// Assignment maps each job index j ∈ [0, m) to its worker index in
	// [0, n), or Unassigned when job j received no worker.
	Assignment []int
}

// Matched returns the number of jobs that received a worker.
// Complexity: O(m).
func (r Result) Matched() int {
	var count int
	for _, w := range r.Assignment {
		if w != Unassigned {
			count++
		}
	}

	return count
}

// Options configures the behavior of the assignment solver.
//
// ForbiddenThreshold – cells with cost ≥ this value are treated as
// forbidden pairings: the solver falls back to its internal padding cost
// for them, and a job whose best match is forbidden comes back Unassigned.
// Default is math.Inf(1) (disabled). The threshold itself must not be NaN;
// any finite value (including 0 and negatives) is legal, since costs may
// be negative.
type Options struct {
	ForbiddenThreshold float64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithForbiddenThreshold marks every cell with cost ≥ t as a forbidden
// pairing. Panics on NaN; panic in Option constructors signals invalid
// configuration early, matching the rest of the library.
func WithForbiddenThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic(ErrBadThreshold.Error())
	}

	return func(o *Options) {
		o.ForbiddenThreshold = t
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - ForbiddenThreshold: math.Inf(1) (no forbidden cells).
func DefaultOptions() Options {
	return Options{
		ForbiddenThreshold: math.Inf(1),
	}
}
