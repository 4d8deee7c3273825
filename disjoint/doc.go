// Package disjoint provides an array-backed disjoint-set forest (union-find)
// over the dense indices 0..n-1.
//
// What & Why
//
//   - Every element starts in its own singleton class.
//   - Union merges two classes and reports whether anything changed; classes only
//     ever merge, never split.
//   - SameSet answers "are these connected yet?", which is the cycle test at the
//     heart of Kruskal's algorithm.
//
// Implementation
//
//   - parent[] and size[] slices; no pointers, no maps.
//   - Find uses iterative path halving (every other node on the path is pointed
//     at its grandparent), so no recursion depth concerns on large grids.
//   - Union by size: the root of the larger class absorbs the smaller one. On a
//     tie the first argument's root wins, so the older, larger region keeps its
//     representative as the maze grows.
//
// Complexity:
//
//   - Find, SameSet, Union: O(α(n)) amortized (α = inverse Ackermann).
//   - New: O(n) time and memory.
//
// Indices outside [0, n) are programmer errors and panic like any slice access.
// A Forest is not safe for concurrent use.
package disjoint
