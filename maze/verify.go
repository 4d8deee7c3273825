package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/walls"
)

// Verify reports whether s describes a perfect maze: exactly W×H−1 open
// interior walls and every cell reachable from (1,1) through them. Exterior
// and sentinel walls are ignored.
//
// Error Conditions:
//   - ErrShape: the snapshot array does not match its Width and Height.
//   - ErrNotPerfect: a loop (too many open walls) or an unreachable cell.
//
// Complexity: O(W×H) time and memory.
func Verify(s walls.Snapshot) error {
	m, err := walls.FromSnapshot(s)
	if err != nil {
		return fmt.Errorf("maze: verify: %w", err)
	}
	g := m.Grid()

	if open, want := m.OpenCount(gridgraph.Interior), g.CellCount()-1; open != want {
		return fmt.Errorf("%w: %d open interior walls, want %d", ErrNotPerfect, open, want)
	}

	// BFS over open interior walls. Each cell has at most four: its own A and B
	// walls and the A/B walls owned by its north and west neighbors.
	start := gridgraph.Cell{X: 1, Y: 1}
	visited := mapset.New[gridgraph.Cell]()
	visited.Put(start)
	queue := []gridgraph.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, w := range [4]gridgraph.Wall{
			{X: c.X, Y: c.Y, Orientation: gridgraph.A},
			{X: c.X, Y: c.Y, Orientation: gridgraph.B},
			{X: c.X, Y: c.Y - 1, Orientation: gridgraph.A},
			{X: c.X - 1, Y: c.Y, Orientation: gridgraph.B},
		} {
			if g.Classify(w) != gridgraph.Interior || !m.IsOpen(w) {
				continue
			}
			owner, neighbor := g.Adjacent(w)
			next := owner
			if next == c {
				next = neighbor
			}
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	if visited.Size() != g.CellCount() {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, visited.Size(), g.CellCount())
	}

	return nil
}
