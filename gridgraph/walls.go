package gridgraph

// Cells enumerates every real cell in row-major order (y outer, x inner).
// Complexity: O(W×H).
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}

	return cells
}

// InteriorWallCount returns width·(height−1) + height·(width−1).
// Complexity: O(1).
func (g *Grid) InteriorWallCount() int {
	return g.width*(g.height-1) + g.height*(g.width-1)
}

// InteriorWalls enumerates the walls eligible for randomized removal:
// all A walls row-major, then all B walls row-major. The order is stable so
// seeded generation is reproducible.
// Complexity: O(W×H).
func (g *Grid) InteriorWalls() []Wall {
	walls := make([]Wall, 0, g.InteriorWallCount())
	// A: x in 1..width, y in 1..height-1.
	for y := 1; y < g.height; y++ {
		for x := 1; x <= g.width; x++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: A})
		}
	}
	// B: x in 1..width-1, y in 1..height.
	for y := 1; y <= g.height; y++ {
		for x := 1; x < g.width; x++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: B})
		}
	}

	return walls
}

// ExteriorWalls enumerates the perimeter in a stable order: north edge, south
// edge (A walls at y=0 and y=height), then west and east edges (B walls at
// x=0 and x=width). There are 2·(width+height) of them.
// Complexity: O(W+H).
func (g *Grid) ExteriorWalls() []Wall {
	walls := make([]Wall, 0, 2*(g.width+g.height))
	for _, y := range [2]int{0, g.height} {
		for x := 1; x <= g.width; x++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: A})
		}
	}
	for _, x := range [2]int{0, g.width} {
		for y := 1; y <= g.height; y++ {
			walls = append(walls, Wall{X: x, Y: y, Orientation: B})
		}
	}

	return walls
}
