package pool_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/pool"
)

// fixedSource always picks the same index, clamped to the pool size.
type fixedSource int

func (s fixedSource) Intn(n int) int {
	if int(s) >= n {
		return n - 1
	}
	return int(s)
}

func interior(t *testing.T, width, height int) []gridgraph.Wall {
	t.Helper()
	g, err := gridgraph.New(width, height)
	require.NoError(t, err)

	return g.InteriorWalls()
}

// TestDraw_ConsumesEachWallOnce drains a pool and checks every wall comes out exactly once.
func TestDraw_ConsumesEachWallOnce(t *testing.T) {
	walls := interior(t, 4, 4)
	p := pool.New(walls)
	r := rand.New(rand.NewSource(1))

	seen := make(map[gridgraph.Wall]int, len(walls))
	for want := len(walls); want > 0; want-- {
		require.Equal(t, want, p.Len())
		w, err := p.Draw(r)
		require.NoError(t, err)
		seen[w]++
	}
	assert.True(t, p.IsEmpty())
	assert.Len(t, seen, len(walls))
	for w, n := range seen {
		assert.Equal(t, 1, n, "wall %v drawn %d times", w, n)
	}
}

// TestDraw_Exhausted verifies drawing from an empty pool fails without panicking.
func TestDraw_Exhausted(t *testing.T) {
	p := pool.New(nil)
	assert.True(t, p.IsEmpty())

	_, err := p.Draw(fixedSource(0))
	assert.ErrorIs(t, err, pool.ErrExhausted)
}

// TestDraw_SwapRemove pins the swap-to-end behavior.
func TestDraw_SwapRemove(t *testing.T) {
	a := gridgraph.Wall{X: 1, Y: 1, Orientation: gridgraph.A}
	b := gridgraph.Wall{X: 2, Y: 1, Orientation: gridgraph.A}
	c := gridgraph.Wall{X: 1, Y: 1, Orientation: gridgraph.B}
	p := pool.New([]gridgraph.Wall{a, b, c})

	w, err := p.Draw(fixedSource(0))
	require.NoError(t, err)
	assert.Equal(t, a, w)

	// c moved into slot 0.
	w, err = p.Draw(fixedSource(0))
	require.NoError(t, err)
	assert.Equal(t, c, w)

	w, err = p.Draw(fixedSource(0))
	require.NoError(t, err)
	assert.Equal(t, b, w)
}

// TestNew_CopiesInput ensures the caller's slice is never reordered.
func TestNew_CopiesInput(t *testing.T) {
	walls := interior(t, 3, 3)
	orig := append([]gridgraph.Wall(nil), walls...)
	p := pool.New(walls)
	for !p.IsEmpty() {
		_, _ = p.Draw(fixedSource(0))
	}
	assert.Equal(t, orig, walls)
}

// TestDraw_Uniform is a coarse smoke check that first draws spread over all walls.
func TestDraw_Uniform(t *testing.T) {
	walls := interior(t, 2, 2) // 4 walls
	r := rand.New(rand.NewSource(99))
	counts := make(map[gridgraph.Wall]int, len(walls))

	const trials = 8000
	for i := 0; i < trials; i++ {
		w, err := pool.New(walls).Draw(r)
		require.NoError(t, err)
		counts[w]++
	}
	for _, w := range walls {
		// Expected 2000 each; allow a wide margin.
		assert.InDelta(t, trials/len(walls), counts[w], 300, "wall %v", w)
	}
}
