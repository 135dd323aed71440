// Package matrix provides the dense cost container consumed by the
// assignment solver.
//
// Overview:
//
//   - Dense is a row-major n×m matrix of float64 values backed by a single
//     flat slice, giving O(1) bounds-checked access and cache-friendly
//     row iteration.
//   - Zero-sized matrices (n == 0 or m == 0) are legal: degenerate
//     assignment problems are a supported input, not an error.
//   - A strict numeric policy rejects NaN and ±Inf on ingestion (Set,
//     FromRows, FromGonum), because the solver's padding-sentinel
//     derivation assumes every stored cost is finite.
//
// Constructors:
//
//   - NewDense(rows, cols):   zero-initialized matrix, rows/cols ≥ 0.
//   - FromRows([][]float64):  copying constructor for slice-of-slices data.
//   - FromGonum(mat.Matrix):  copying adapter for gonum matrix values.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrBadShape    – negative row or column count requested.
//   - ErrOutOfRange  – row/column index outside [0,rows)×[0,cols).
//   - ErrRaggedRows  – FromRows input rows differ in length.
//   - ErrNaNInf      – NaN or ±Inf where a finite value is required.
//   - ErrNilMatrix   – nil matrix argument.
//
// Thread safety:
//
//   - Dense has no internal synchronization. Distinct Dense values may be
//     used concurrently; sharing one value across goroutines requires
//     external synchronization if any of them mutates it.
package matrix
