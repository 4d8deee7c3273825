package walls

import "github.com/katalvlaran/lvmaze/gridgraph"

// Snapshot is a read-only copy of a Map for rendering collaborators.
// Present[x][y][o] is true when the wall (x, y, o) blocks passage; x spans
// 0..Width and y spans 0..Height.
type Snapshot struct {
	Width, Height int
	Present       [][][2]bool
}

// IsOpen reports whether w is open in the snapshot. Walls outside the
// array report false.
func (s Snapshot) IsOpen(w gridgraph.Wall) bool {
	if w.X < 0 || w.X >= len(s.Present) || w.Y < 0 || w.Y >= len(s.Present[w.X]) {
		return false
	}
	if w.Orientation != gridgraph.A && w.Orientation != gridgraph.B {
		return false
	}

	return !s.Present[w.X][w.Y][w.Orientation]
}

// Equal reports whether two snapshots describe the same wall state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Width != o.Width || s.Height != o.Height || len(s.Present) != len(o.Present) {
		return false
	}
	for x := range s.Present {
		if len(s.Present[x]) != len(o.Present[x]) {
			return false
		}
		for y := range s.Present[x] {
			if s.Present[x][y] != o.Present[x][y] {
				return false
			}
		}
	}

	return true
}
