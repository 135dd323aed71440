// Package hungarian provides a precise, deterministic implementation of the
// Kuhn–Munkres (Hungarian) algorithm for the rectangular linear assignment
// problem with real-valued costs.
//
// Overview:
//
//   - Given n workers, m jobs and a dense n×m cost matrix, Solve finds the
//     matching of the smaller side that minimizes total cost; with n ≠ m the
//     surplus of the larger side stays Unassigned.
//   - Internally the rectangle is padded to an N×N square (N = max(n, m)).
//     Padding cells carry a derived sentinel cost 2·maxAbs·N + 1, strictly
//     greater than the gap between any two real matching totals, so a
//     padded pairing is chosen only when no feasible real matching exists
//     and is always stripped from the result.
//   - The core maintains dual potentials u (per worker) and v (per job)
//     with u[i] + v[j] ≤ a[i][j] at all times (complementary slackness).
//     Each outer iteration inserts one worker row and runs a Dijkstra-like
//     search over job slacks with lazy δ-updates, then augments along the
//     discovered path.
//
// When to use:
//
//   - Task scheduling: dispatch n crews to m sites at minimum combined cost.
//   - Tracking and perception: associate detections with tracked objects.
//   - Any bipartite min-cost matching over a dense score/distance table.
//
// Key features:
//
//   - Rectangular by design: n ≠ m needs no padding or dummy entries on the
//     caller's side.
//   - Functional options allow fine-tuning without changing the signature.
//   - WithForbiddenThreshold: cells with cost ≥ threshold become forbidden
//     pairings; jobs whose every worker is forbidden come back Unassigned.
//   - Degenerate inputs (n == 0 or m == 0) return a well-defined empty
//     result instead of an error.
//   - Deterministic tie-breaking (first minimal job index), so repeated
//     calls on the same matrix are bit-identical.
//
// Performance and complexity:
//
//   - Time:  O(N³), N = max(n, m)
//   - One augmenting-path search per padded row: N searches.
//   - Each search relaxes up to N job slacks up to N times.
//   - Space: O(N²)
//   - The padded square dominates; potentials, matching and the
//     per-iteration scratch (minv/way/used) are O(N) and are reset,
//     not reallocated, between outer iterations.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:
//     Returned if you pass a nil *matrix.Dense to Solve.
//   - ErrNonFiniteCost:
//     Returned if any input cost is NaN or ±Inf (detected by a fast O(n·m)
//     pre-scan); the padding-sentinel ordering guarantee requires finite
//     inputs.
//   - ErrBadThreshold:
//     Returned (via panic) if WithForbiddenThreshold is given NaN.
//
// API reference:
//
//	func Solve(costs *matrix.Dense, opts ...Option) (Result, error)
//	func SolveRows(costs [][]float64, opts ...Option) (Result, error)
//
//	  - costs: dense n×m cost matrix; rows are workers, columns are jobs.
//	  - opts:  zero or more functional options:
//	      • WithForbiddenThreshold(float64): cost ≥ threshold ⇒ forbidden.
//	  - Result.TotalCost:  sum of matched real costs.
//	  - Result.Assignment: worker per job, Unassigned where no worker.
//	  - Result.Matched():  number of jobs that received a worker.
//
// Thread safety:
//
//   - Solve keeps no global or shared state; every call owns its working
//     memory. Concurrent calls on separate matrices are inherently safe.
//     Sharing one *matrix.Dense across goroutines is safe while nobody
//     mutates it.
//
// See also:
//
//   - matrix.FromRows / matrix.FromGonum: build the cost container from
//     slice-of-slices data or gonum mat.Matrix values.
package hungarian
