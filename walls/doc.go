// Package walls records, for every addressable wall of a gridgraph.Grid,
// whether it is present (blocks passage) or open.
//
// A Map is dense: (width+1)·(height+1)·2 booleans, one per (x, y, orientation)
// address including the sentinel row and column. Sentinel walls are open from
// construction; interior and exterior walls start present. Opening is
// idempotent and there is no way to close a wall again, so an open wall stays
// open for the lifetime of the Map.
//
// Renderers never touch a Map directly. They receive a Snapshot, a deep copy
// indexed [x][y][orientation] that mirrors the over-allocated wall array the
// map was built from.
//
// FromSnapshot rebuilds a Map from such an array after validating its shape
// against the declared width and height. A mismatch is an error (ErrShape), not
// a warning.
//
// A Map is not safe for concurrent mutation.
package walls
