// Package lvlassign solves the rectangular linear assignment problem:
// match n workers to m jobs at minimum total cost, leaving the surplus
// side of the rectangle unassigned.
//
// 🚀 What is lvlassign?
//
//	A small, deterministic library built around one numerical core:
//		• hungarian/ — the Kuhn–Munkres (Hungarian) solver with dual
//		  potentials and Dijkstra-like augmenting-path search, O(N³)
//		• matrix/    — a bounds-checked, row-major dense cost container,
//		  with adapters for plain slices and gonum mat.Matrix values
//
// ✨ Why choose lvlassign?
//
//   - Rectangular by design – n ≠ m is the normal case, not an error
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Deterministic – identical inputs yield bit-identical results
//   - Reentrant – no global state; concurrent calls on separate
//     matrices are inherently safe
//
// Quick ASCII example:
//
//	        jobs →   j0    j1    j2    j3
//	    workers ↓
//	       w0      [ 9.0   2.5   7.1   8.3 ]
//	       w1      [ 6.2   4.8   3.0   7.9 ]
//	       w2      [ 5.0   8.1   1.5   8.7 ]
//
//	optimal matching: j0→w1, j1→w0, j2→w2, j3 unassigned (cost 10.2)
//
// Dive into hungarian/doc.go for the algorithm walkthrough, error
// taxonomy and the full API reference.
//
//	go get github.com/katalvlaran/lvlassign
package lvlassign
