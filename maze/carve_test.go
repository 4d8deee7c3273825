package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// sameSetMatrix records SameSet for every ordered pair of cells.
func sameSetMatrix(gen *maze.Generator) []bool {
	cells := gen.Grid().Cells()
	out := make([]bool, 0, len(cells)*len(cells))
	for _, a := range cells {
		for _, b := range cells {
			out = append(out, gen.SameSet(a, b))
		}
	}

	return out
}

// TestAddMarker_CarveIsolation verifies a carve changes one wall and one marker only.
func TestAddMarker_CarveIsolation(t *testing.T) {
	for _, complete := range []bool{false, true} {
		gen := newGenerator(t, 4, 3, 12)
		if complete {
			require.NoError(t, gen.Complete())
		}
		before := gen.Snapshot()
		conn := sameSetMatrix(gen)
		stats := gen.Stats()

		wall := gridgraph.Wall{X: 2, Y: 0, Orientation: gridgraph.A}
		cell := gridgraph.Cell{X: 2, Y: 1}
		require.NoError(t, gen.AddMarker(maze.Start, cell, wall))

		after := gen.Snapshot()
		changed := 0
		for _, w := range allWalls(gen.Grid()) {
			if before.Walls.IsOpen(w) != after.Walls.IsOpen(w) {
				changed++
				assert.Equal(t, wall, w)
			}
		}
		assert.Equal(t, 1, changed)
		assert.Equal(t, conn, sameSetMatrix(gen))
		assert.Equal(t, stats, gen.Stats())
		assert.Equal(t, []maze.Marker{{Label: maze.Start, Cell: cell, Wall: wall}}, after.Markers)
	}
}

// TestAddMarker_Overwrite verifies a second Start replaces the first but keeps its wall open.
func TestAddMarker_Overwrite(t *testing.T) {
	gen := newGenerator(t, 3, 3, 1)
	require.NoError(t, gen.Complete())

	first := gridgraph.Wall{X: 1, Y: 0, Orientation: gridgraph.A}
	second := gridgraph.Wall{X: 0, Y: 2, Orientation: gridgraph.B}
	require.NoError(t, gen.AddMarker(maze.Start, gridgraph.Cell{X: 1, Y: 1}, first))
	require.NoError(t, gen.AddMarker(maze.End, gridgraph.Cell{X: 3, Y: 3}, gridgraph.Wall{X: 3, Y: 3, Orientation: gridgraph.B}))
	require.NoError(t, gen.AddMarker(maze.Start, gridgraph.Cell{X: 1, Y: 2}, second))

	m, ok := gen.Marker(maze.Start)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 2}, m.Cell)
	assert.Equal(t, second, m.Wall)
	assert.True(t, gen.IsOpen(first))
	assert.True(t, gen.IsOpen(second))

	markers := gen.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, maze.Start, markers[0].Label)
	assert.Equal(t, maze.End, markers[1].Label)
	assert.NoError(t, gen.Verify(), "carving must not affect the interior tree")
}

// TestAddMarker_Invalid verifies every rejected request leaves state unchanged.
func TestAddMarker_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		label maze.Label
		cell  gridgraph.Cell
		wall  gridgraph.Wall
	}{
		{"NotAdjacent", maze.Start, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Wall{X: 3, Y: 0, Orientation: gridgraph.A}},
		{"FarSide", maze.End, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Wall{X: 1, Y: 3, Orientation: gridgraph.A}},
		{"Interior", maze.Start, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Wall{X: 1, Y: 1, Orientation: gridgraph.B}},
		{"Sentinel", maze.Start, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Wall{X: 1, Y: 0, Orientation: gridgraph.B}},
		{"OutOfRange", maze.Start, gridgraph.Cell{X: 3, Y: 1}, gridgraph.Wall{X: 4, Y: 1, Orientation: gridgraph.B}},
		{"CellOffGrid", maze.Start, gridgraph.Cell{X: 1, Y: 0}, gridgraph.Wall{X: 1, Y: 0, Orientation: gridgraph.A}},
		{"UnknownLabel", maze.Label("middle"), gridgraph.Cell{X: 1, Y: 1}, gridgraph.Wall{X: 1, Y: 0, Orientation: gridgraph.A}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := newGenerator(t, 3, 3, 2)
			require.NoError(t, gen.Complete())
			before := gen.Snapshot()

			err := gen.AddMarker(tc.label, tc.cell, tc.wall)
			assert.ErrorIs(t, err, maze.ErrInvalidBoundary)
			assert.True(t, before.Walls.Equal(gen.Snapshot().Walls))
			assert.Empty(t, gen.Markers())
		})
	}
}
