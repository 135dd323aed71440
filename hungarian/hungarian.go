// Package hungarian implements the Kuhn–Munkres (Hungarian) algorithm for
// the rectangular linear assignment problem.
//
// The rectangular n×m instance is solved on an internally padded N×N square
// (N = max(n, m)): cells outside the original rectangle carry a derived
// padding cost strictly larger than any achievable real total, so padded
// edges are only used when the real matrix leaves no alternative, and they
// never surface in the returned assignment.
//
// Per padded row the solver runs a Dijkstra-like search over job slacks
// (reduced costs a[i][j] − u[i] − v[j]) and grows the matching by one along
// the discovered augmenting path, updating the dual potentials so that
// u[i] + v[j] ≤ a[i][j] holds throughout with equality on matched edges.
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlassign/matrix"
)

// Solve computes a minimum-cost assignment of workers (matrix rows) to jobs
// (matrix columns). It accepts functional options to customize behavior
// (ForbiddenThreshold).
//
// Returns:
//
//   - Result.TotalCost:  sum of costs over all matched pairs.
//   - Result.Assignment: worker index for each job, or Unassigned.
//   - err: error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. costs must be non-nil (ErrNilMatrix).
//  2. n == 0 or m == 0 is NOT an error: zero cost, every job Unassigned.
//  3. Every cost must be finite (ErrNonFiniteCost), detected by an upfront
//     O(n·m) pre-scan that also derives the padding sentinel.
//
// Guarantees:
//
//   - Deterministic: identical inputs yield bit-identical results
//     (ties are broken at the first minimal job index).
//   - Each returned worker index appears at most once.
//   - min(n, m) jobs are matched whenever no cell is forbidden.
//   - costs is never mutated; all working state is local to the call, so
//     concurrent Solve calls on separate matrices are safe.
//
// Complexity:
//
//   - Time:  O(N³), N = max(n, m)
//   - Space: O(N²) for the padded square plus O(N) vectors
func Solve(costs *matrix.Dense, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate matrix is non-nil.
	if costs == nil {
		return Result{}, ErrNilMatrix
	}
	n, m := costs.Rows(), costs.Cols()

	// 3) Degenerate instance: nothing to match, well-defined empty result.
	if n == 0 || m == 0 {
		return emptyResult(m), nil
	}

	// 4) Pre-scan all costs to reject NaN/±Inf, and record the maximum
	//    magnitude for the padding-sentinel derivation. Fail fast with the
	//    offending coordinates.
	var (
		maxAbs float64
		row    []float64
		c      float64
		i, j   int
		err    error
	)
	rows := make([][]float64, n)
	for i = 0; i < n; i++ {
		if row, err = costs.Row(i); err != nil {
			return Result{}, err
		}
		for j, c = range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return Result{}, fmt.Errorf("%w: cost[%d][%d]=%v", ErrNonFiniteCost, i, j, c)
			}
			if a := math.Abs(c); a > maxAbs {
				maxAbs = a
			}
		}
		rows[i] = row
	}

	// 5) Run the solver over its own padded working state.
	r := newRunner(rows, n, m, maxAbs, cfg)
	r.run()

	// 6) Project the square matching back onto the original rectangle.
	return r.result(), nil
}

// SolveRows is a convenience wrapper around Solve for callers holding a
// plain slice-of-slices cost table. The input is copied into a Dense first,
// so matrix-level validation (ErrRaggedRows, ErrNaNInf) applies.
func SolveRows(costs [][]float64, opts ...Option) (Result, error) {
	d, err := matrix.FromRows(costs)
	if err != nil {
		return Result{}, err
	}

	return Solve(d, opts...)
}

// emptyResult builds the well-defined answer for a degenerate instance:
// zero total cost and every one of the m jobs Unassigned.
func emptyResult(m int) Result {
	jobs := make([]int, m)
	for j := range jobs {
		jobs[j] = Unassigned
	}

	return Result{TotalCost: 0, Assignment: jobs}
}

// runner holds the mutable state for a single Solve execution. Nothing in
// it outlives the call, and the input matrix is only read.
type runner struct {
	cfg  Options
	n, m int // original rectangle: n workers (rows) × m jobs (cols)
	size int // padded square side, max(n, m)
	pad  float64

	rows [][]float64 // read-only views of the original cost rows

	a [][]float64 // padded size×size square

	// Dual potentials. u is per padded worker; v has one extra slot at
	// index size for the virtual root column of the alternating tree.
	u, v []float64

	// p[j] = padded worker matched to padded job j, or Unassigned.
	// p[size] holds the worker currently being inserted (the tree root).
	p []int

	// Per-iteration scratch, reset (not reallocated) for every inserted row:
	// minv[j] = best known slack for reaching job j, way[j] = the job from
	// which that slack was last improved, used[j] = j absorbed into the
	// alternating-tree frontier.
	way  []int
	minv []float64
	used []bool
}

// newRunner allocates all working state for one Solve call: the padded
// square, the potential vectors and the per-iteration scratch buffers.
//
// The padding sentinel is derived, not hardcoded: pad = 2·maxAbs·N + 1
// exceeds the largest possible gap between the real totals of any two
// matchings on the square (each bounded by N·maxAbs in magnitude), so a
// matching using one extra sentinel cell can never undercut one using
// fewer — even when sentinel-cell counts differ across matchings, as they
// do once ForbiddenThreshold masks real cells with negative costs around.
// Cells at or above cfg.ForbiddenThreshold are mapped to the same sentinel.
func newRunner(rows [][]float64, n, m int, maxAbs float64, cfg Options) *runner {
	size := n
	if m > size {
		size = m
	}
	pad := 2*maxAbs*float64(size) + 1

	// Build the padded square. Real cells copy through unless forbidden;
	// everything outside the n×m rectangle carries the sentinel.
	a := make([][]float64, size)
	var i, j int
	var c float64
	for i = 0; i < size; i++ {
		a[i] = make([]float64, size)
		for j = 0; j < size; j++ {
			c = pad
			if i < n && j < m && rows[i][j] < cfg.ForbiddenThreshold {
				c = rows[i][j]
			}
			a[i][j] = c
		}
	}

	r := &runner{
		cfg:  cfg,
		n:    n,
		m:    m,
		size: size,
		pad:  pad,
		rows: rows,
		a:    a,
		u:    make([]float64, size),
		v:    make([]float64, size+1),
		p:    make([]int, size+1),
		way:  make([]int, size+1),
		minv: make([]float64, size+1),
		used: make([]bool, size+1),
	}
	for j = range r.p {
		r.p[j] = Unassigned
	}

	return r
}

// run inserts every padded worker row, growing the matching by exactly one
// per iteration. After size iterations the matching on the padded square is
// perfect and, by the standard primal-dual argument, optimal.
func (r *runner) run() {
	for i := 0; i < r.size; i++ {
		r.insert(i)
	}
}

// insert attaches worker i as the root of an alternating tree hanging off
// the virtual column (index size) and searches for the cheapest augmenting
// path to an unmatched job, Dijkstra-style over job slacks.
//
// Loop invariant: u[i] + v[j] ≤ a[i][j] for all padded (i, j), with
// equality on every matched edge and on every edge of the tree frontier.
func (r *runner) insert(i int) {
	// 1) Reset per-iteration scratch (reused across iterations).
	var j int
	inf := math.Inf(1)
	for j = 0; j <= r.size; j++ {
		r.minv[j] = inf
		r.used[j] = false
	}

	// 2) Root the tree: the virtual column temporarily holds worker i.
	r.p[r.size] = i
	j0 := r.size

	// 3) Relax job slacks until the frontier reaches an unmatched job.
	var (
		i0, j1 int
		delta  float64
		cur    float64
	)
	for {
		r.used[j0] = true
		i0 = r.p[j0] // worker currently occupying the frontier job

		// 3a) Improve the best-known slack of every unused job via i0,
		//     remembering the frontier job that improved it.
		delta, j1 = inf, -1
		for j = 0; j < r.size; j++ {
			if r.used[j] {
				continue
			}
			cur = r.a[i0][j] - r.u[i0] - r.v[j]
			if cur < r.minv[j] {
				r.minv[j] = cur
				r.way[j] = j0
			}
			// Tie-break: strict < keeps the first minimal index.
			if r.minv[j] < delta {
				delta = r.minv[j]
				j1 = j
			}
		}

		// 3b) Shift potentials by δ: tree edges stay tight, remaining
		//     slacks shrink, and the u+v ≤ a invariant is preserved.
		for j = 0; j <= r.size; j++ {
			if r.used[j] {
				r.u[r.p[j]] += delta
				r.v[j] -= delta
			} else {
				r.minv[j] -= delta
			}
		}

		// 3c) Advance the frontier; stop once it lands on an unmatched job.
		j0 = j1
		if r.p[j0] == Unassigned {
			break
		}
	}

	// 4) Augment: walk the way[] chain back to the virtual root, shifting
	//    every displaced worker one edge along the path. Worker i ends up
	//    matched and the matching grows by one.
	for j0 != r.size {
		j1 = r.way[j0]
		r.p[j0] = r.p[j1]
		j0 = j1
	}
}

// result projects the perfect matching on the padded square back onto the
// original n×m rectangle: pairs touching a padded row or column, and pairs
// whose real cost is forbidden, are dropped and their job stays Unassigned.
func (r *runner) result() Result {
	assignment := make([]int, r.m)
	for j := range assignment {
		assignment[j] = Unassigned
	}

	var total float64
	var i, j int
	var c float64
	for j = 0; j < r.m; j++ {
		i = r.p[j]
		if i == Unassigned || i >= r.n {
			continue // padded worker row
		}
		c = r.rows[i][j]
		if c >= r.cfg.ForbiddenThreshold {
			continue // forbidden pairing, surfaced as Unassigned
		}
		assignment[j] = i
		total += c
	}

	return Result{TotalCost: total, Assignment: assignment}
}
