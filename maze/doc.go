// Package maze generates perfect mazes on an orthogonal grid with randomized
// Kruskal's algorithm, and carves entrances and exits into the finished result.
//
// What & Why
//
//   - What is a perfect maze?
//     A wall configuration in which every pair of cells is joined by exactly one
//     simple path of open passages, i.e. a spanning tree of the grid graph.
//
//   - Why Kruskal?
//     Treat every interior wall as an unweighted edge and visit them in random
//     order. A wall whose two cells are already connected would close a loop and
//     stays; any other wall is knocked down and the two regions merge. The loop
//     stops as soon as a single region remains, after exactly width·height−1
//     walls have been opened.
//
// Algorithm
//
//   - Generator.Step draws one wall from the candidate pool, looks up its two
//     cells, and either opens it (Opened), keeps it (Discarded) or, if the
//     neighbor lies off the grid, ignores it (Skipped). Every call consumes one
//     pool entry.
//   - Generator.Complete calls Step while more than one region remains. Calling it
//     again is a no-op.
//   - Generator.AddMarker opens one exterior wall next to a cell and records it as
//     the Start or End marker. Carving never touches connectivity or interior
//     walls.
//   - Verify re-derives connectivity from a wall snapshot alone, so a layout can
//     be audited without the generator that produced it.
//
// Determinism
//
//	All randomness comes from the *rand.Rand owned by one Generator. The same
//	(width, height, WithSeed(s)) always yields the same walls. Without WithSeed
//	or WithRand the seed is taken from the clock; Seed() reports it so the run
//	can be replayed.
//
// Complexity:
//
//   - New: O(W×H) time and memory.
//   - Step: O(α(W×H)) amortized.
//   - Complete: O(W×H·α(W×H)).
//
// Non-uniformity: randomized Kruskal yields a valid random spanning tree, not a
// uniformly distributed one.
//
// Errors:
//
//   - ErrShape: width or height below 1.
//   - ErrPoolExhausted: Step called with no candidate walls left.
//   - ErrInvalidBoundary: AddMarker with an unknown label, a cell off the grid, or
//     a wall that is not exterior or not adjacent to the cell.
//   - ErrNotPerfect: Verify found a cycle or an unreachable cell.
//
// A Generator is not safe for concurrent use. Independent generators share no
// state and may run on separate goroutines.
package maze
