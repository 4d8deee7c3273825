package maze

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// AddMarker opens the exterior wall next to cell and records cell under label,
// replacing any previous marker with that label. The previously carved wall
// stays open.
//
// Error Conditions (nothing changes on error):
//   - ErrInvalidBoundary: label is not Start or End, cell is off the grid, wall
//     is not exterior, or wall does not border cell.
//
// Carving is independent of generation: it may be called before, during or
// after Complete and never changes connectivity.
// Complexity: O(1).
func (g *Generator) AddMarker(label Label, cell gridgraph.Cell, wall gridgraph.Wall) error {
	if label != Start && label != End {
		return fmt.Errorf("%w: unknown label %q", ErrInvalidBoundary, label)
	}
	if !g.grid.Contains(cell) {
		return fmt.Errorf("%w: cell %v is off the grid", ErrInvalidBoundary, cell)
	}
	if c := g.grid.Classify(wall); c != gridgraph.Exterior {
		return fmt.Errorf("%w: wall %v is %v, not exterior", ErrInvalidBoundary, wall, c)
	}
	if !g.grid.Touches(wall, cell) {
		return fmt.Errorf("%w: wall %v does not border cell %v", ErrInvalidBoundary, wall, cell)
	}

	g.walls.Open(wall)
	g.markers[label] = Marker{Label: label, Cell: cell, Wall: wall}

	g.log.WithFields(logrus.Fields{
		"label": string(label),
		"cell":  cell.String(),
		"wall":  wall.String(),
	}).Debug("maze: marker added")

	return nil
}

// Marker returns the marker recorded under label.
func (g *Generator) Marker(label Label) (Marker, bool) {
	m, ok := g.markers[label]

	return m, ok
}

// Markers returns the recorded markers, Start before End.
func (g *Generator) Markers() []Marker {
	out := make([]Marker, 0, len(g.markers))
	for _, l := range [2]Label{Start, End} {
		if m, ok := g.markers[l]; ok {
			out = append(out, m)
		}
	}

	return out
}
