// Package gridgraph defines the cell, wall and classification types shared by
// every lvmaze package.
package gridgraph

import "fmt"

// Orientation selects which neighbor a wall separates its owner from.
type Orientation uint8

const (
	// A separates the owner (x,y) from (x,y+1).
	A Orientation = iota
	// B separates the owner (x,y) from (x+1,y).
	B
)

// Orientations lists both orientations in canonical order.
var Orientations = [2]Orientation{A, B}

// String returns "A" or "B".
func (o Orientation) String() string {
	switch o {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Cell is a grid square. Real cells satisfy 1 ≤ X ≤ width and 1 ≤ Y ≤ height.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Wall is addressed by its owning coordinate and orientation.
type Wall struct {
	X, Y        int
	Orientation Orientation
}

// String formats the wall as "(x,y)/A".
func (w Wall) String() string {
	return fmt.Sprintf("(%d,%d)/%s", w.X, w.Y, w.Orientation)
}

// Class is the role a wall plays in the grid.
type Class int

const (
	// Invalid marks an address outside 0..width × 0..height or an unknown orientation.
	Invalid Class = iota
	// Sentinel walls reference only non-existent cells and are always open.
	Sentinel
	// Exterior walls lie on the perimeter; only carving opens them.
	Exterior
	// Interior walls separate two real cells.
	Interior
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Sentinel:
		return "sentinel"
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	default:
		return "invalid"
	}
}

// Grid is an immutable width×height cell topology.
type Grid struct {
	width, height int
}
