// Package lvmaze generates perfect mazes: rectangular grids in which exactly one
// path of open passages joins any two cells.
//
// 🧱 What is lvmaze?
//
//	A small, dependency-light library built around randomized Kruskal:
//		• gridgraph/ - cell coordinates and the (owner, orientation) wall addressing
//		• walls/     - the dense present/open wall map and renderer snapshots
//		• disjoint/  - array-backed union-find with path halving and union by size
//		• pool/      - candidate walls with O(1) uniform random removal
//		• maze/      - the Generator: Step, Complete, AddMarker, Verify
//
// ✨ Guarantees
//
//   - Perfect: after Complete, width·height−1 interior walls are open and every
//     cell is reachable.
//   - Reproducible: the same size and seed always yield the same walls.
//   - Monotonic: an open wall is never closed again.
//   - Silent by default: inject a logrus logger to trace generation.
//
// Quick ASCII example (2×2, one possible result):
//
//	+---+---+
//	|       |
//	+   +---+
//	|       |
//	+---+---+
//
// Drawing, file export and command-line driving are left to the caller; the
// library hands out a walls.Snapshot plus start/end markers and nothing else.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
