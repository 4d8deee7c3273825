// Package gridgraph describes the topology of a rectangular maze grid: which
// cells exist and how every wall between them is addressed.
//
// What:
//
//   - A Grid of width×height cells, addressed (X, Y) with 1 ≤ X ≤ width, 1 ≤ Y ≤ height.
//   - Walls addressed by an owning coordinate and an Orientation:
//     A separates (x,y) from (x,y+1), B separates (x,y) from (x+1,y).
//     Each wall between two cells has exactly one owner, so nothing is counted twice.
//   - Row 0 and column 0 are addressable but never real cells. They let the
//     west and north perimeter be expressed with the same (owner, orientation)
//     arithmetic as everything else.
//
// Wall classes:
//
//   - Sentinel: A walls with X == 0 and B walls with Y == 0. They sit between two
//     non-existent cells and are always open.
//   - Exterior: the remaining walls on the perimeter (A at Y == 0 or Y == height,
//     B at X == 0 or X == width). Closed until explicitly carved.
//   - Interior: everything else; the only walls a generator may remove.
//     There are width·(height−1) + height·(width−1) of them.
//
// A Grid is immutable and safe to share between goroutines.
//
// Complexity:
//
//   - Classify, Adjacent, Index, CellAt: O(1).
//   - Cells, InteriorWalls, ExteriorWalls: O(W×H) time and memory.
//
// Errors:
//
//   - ErrShape: width or height below 1.
package gridgraph
