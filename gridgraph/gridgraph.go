package gridgraph

import (
	"fmt"
	"math"
)

// New constructs a width×height Grid.
// Returns ErrShape (wrapped with the requested size) if width < 1 or height < 1,
// or if the (width+1)·(height+1)·2 wall address space does not fit in an int.
// Complexity: O(1).
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, width, height)
	}
	if !fits(width, height) {
		return nil, fmt.Errorf("%w: %dx%d overflows the wall address space", ErrShape, width, height)
	}

	return &Grid{width: width, height: height}, nil
}

// fits reports whether (width+1)·(height+1)·2 is representable as an int.
// Both dimensions are positive.
func fits(width, height int) bool {
	if width >= math.MaxInt || height >= math.MaxInt {
		return false
	}

	return width+1 <= math.MaxInt/2/(height+1)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellCount returns width·height.
func (g *Grid) CellCount() int { return g.width * g.height }

// Contains reports whether c is a real cell.
// Complexity: O(1).
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// Addressable reports whether w lies in 0..width × 0..height with a known orientation.
// Complexity: O(1).
func (g *Grid) Addressable(w Wall) bool {
	if w.Orientation != A && w.Orientation != B {
		return false
	}

	return w.X >= 0 && w.X <= g.width && w.Y >= 0 && w.Y <= g.height
}

// Classify reports whether w is a sentinel, exterior or interior wall.
// Non-addressable walls are Invalid.
// Complexity: O(1).
func (g *Grid) Classify(w Wall) Class {
	if !g.Addressable(w) {
		return Invalid
	}
	switch w.Orientation {
	case A:
		if w.X == 0 {
			return Sentinel
		}
		if w.Y == 0 || w.Y == g.height {
			return Exterior
		}
	case B:
		if w.Y == 0 {
			return Sentinel
		}
		if w.X == 0 || w.X == g.width {
			return Exterior
		}
	}

	return Interior
}

// Adjacent returns the two cells a wall separates: its owner (x,y) and the
// neighbor in the orientation's direction. Either may be non-existent for
// sentinel and exterior walls; check with Contains.
// Complexity: O(1).
func (g *Grid) Adjacent(w Wall) (owner, neighbor Cell) {
	owner = Cell{X: w.X, Y: w.Y}
	if w.Orientation == A {
		return owner, Cell{X: w.X, Y: w.Y + 1}
	}

	return owner, Cell{X: w.X + 1, Y: w.Y}
}

// Touches reports whether c is one of the two cells w separates.
func (g *Grid) Touches(w Wall, c Cell) bool {
	owner, neighbor := g.Adjacent(w)

	return c == owner || c == neighbor
}

// Index maps a real cell to a dense row-major index in [0, CellCount).
// The result is meaningless for cells outside the grid.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return (c.Y-1)*g.width + (c.X - 1)
}

// CellAt converts an index produced by Index back to its cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx%g.width + 1, Y: idx/g.width + 1}
}
