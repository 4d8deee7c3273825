package walls

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Map is the mutable wall state of one grid. true means the wall is present.
type Map struct {
	grid    *gridgraph.Grid
	present []bool
	stride  int // addresses per row: width+1
	opened  [4]int // open walls per gridgraph.Class
}

// New returns a Map for g with every interior and exterior wall present and
// every sentinel wall open.
// Complexity: O(W×H).
func New(g *gridgraph.Grid) *Map {
	m := &Map{
		grid:    g,
		present: make([]bool, (g.Width()+1)*(g.Height()+1)*2),
		stride:  g.Width() + 1,
	}
	for i := range m.present {
		m.present[i] = true
	}
	m.cutSentinels()

	return m
}

// FromSnapshot rebuilds a Map from a wall array. The array must be
// (Width+1)×(Height+1) with Width, Height ≥ 1; otherwise ErrShape is returned
// and no Map is built. Sentinel entries are forced open regardless of input.
// Complexity: O(W×H).
func FromSnapshot(s Snapshot) (*Map, error) {
	g, err := gridgraph.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if len(s.Present) != s.Width+1 {
		return nil, fmt.Errorf("%w: got %d columns, want %d", gridgraph.ErrShape, len(s.Present), s.Width+1)
	}
	for x, col := range s.Present {
		if len(col) != s.Height+1 {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", gridgraph.ErrShape, x, len(col), s.Height+1)
		}
	}

	m := New(g)
	for x, col := range s.Present {
		for y, pair := range col {
			for _, o := range gridgraph.Orientations {
				w := gridgraph.Wall{X: x, Y: y, Orientation: o}
				if !pair[o] {
					m.Open(w)
				}
			}
		}
	}

	return m, nil
}

// cutSentinels forces A walls at x=0 and B walls at y=0 open.
func (m *Map) cutSentinels() {
	for y := 0; y <= m.grid.Height(); y++ {
		m.present[m.index(gridgraph.Wall{X: 0, Y: y, Orientation: gridgraph.A})] = false
	}
	for x := 0; x <= m.grid.Width(); x++ {
		m.present[m.index(gridgraph.Wall{X: x, Y: 0, Orientation: gridgraph.B})] = false
	}
}

func (m *Map) index(w gridgraph.Wall) int {
	return (w.Y*m.stride+w.X)*2 + int(w.Orientation)
}

// Grid returns the topology the map was built for.
func (m *Map) Grid() *gridgraph.Grid { return m.grid }

// IsOpen reports whether w is open. Non-addressable walls report false.
// Complexity: O(1).
func (m *Map) IsOpen(w gridgraph.Wall) bool {
	if !m.grid.Addressable(w) {
		return false
	}

	return !m.present[m.index(w)]
}

// Open removes w and reports whether its state changed. Opening an open wall
// or a non-addressable wall is a no-op.
// Complexity: O(1).
func (m *Map) Open(w gridgraph.Wall) bool {
	if !m.grid.Addressable(w) {
		return false
	}
	i := m.index(w)
	if !m.present[i] {
		return false
	}
	m.present[i] = false
	m.opened[m.grid.Classify(w)]++

	return true
}

// OpenCount returns how many walls of class c are open. Sentinel walls are
// always fully open.
// Complexity: O(1).
func (m *Map) OpenCount(c gridgraph.Class) int {
	if c == gridgraph.Sentinel {
		return m.grid.Width() + m.grid.Height() + 2
	}

	if c < gridgraph.Invalid || c > gridgraph.Interior {
		return 0
	}

	return m.opened[c]
}

// Snapshot returns a deep copy of the wall state.
// Complexity: O(W×H).
func (m *Map) Snapshot() Snapshot {
	w, h := m.grid.Width(), m.grid.Height()
	present := make([][][2]bool, w+1)
	for x := 0; x <= w; x++ {
		present[x] = make([][2]bool, h+1)
		for y := 0; y <= h; y++ {
			for _, o := range gridgraph.Orientations {
				present[x][y][o] = m.present[m.index(gridgraph.Wall{X: x, Y: y, Orientation: o})]
			}
		}
	}

	return Snapshot{Width: w, Height: h, Present: present}
}
