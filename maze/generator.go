package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/disjoint"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/pool"
	"github.com/katalvlaran/lvmaze/walls"
)

// Generator owns the wall state, connectivity forest and candidate pool of
// one maze and drives randomized Kruskal over them.
type Generator struct {
	grid    *gridgraph.Grid
	walls   *walls.Map
	forest  *disjoint.Forest
	pool    *pool.Pool
	rng     *rand.Rand
	log     logrus.FieldLogger
	markers map[Label]Marker

	seed    int64
	hasSeed bool
	stats   Stats
}

// New builds a width×height Generator with every interior wall still standing.
//
// Error Conditions:
//   - ErrShape: width < 1 or height < 1. Nothing is allocated.
//
// Steps:
//  1. Validate the shape via gridgraph.New.
//  2. Resolve the random source: WithRand, else WithSeed, else the clock.
//  3. Build the wall map, a forest of W×H singletons and the interior-wall pool.
//
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridgraph.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("maze: new: %w", err)
	}

	gen := &Generator{
		grid:    g,
		walls:   walls.New(g),
		forest:  disjoint.New(g.CellCount()),
		pool:    pool.New(g.InteriorWalls()),
		log:     o.Logger,
		markers: make(map[Label]Marker, 2),
	}
	if gen.log == nil {
		gen.log = discardLogger()
	}

	switch {
	case o.Rand != nil:
		gen.rng = o.Rand
	case o.HasSeed:
		gen.seed, gen.hasSeed = o.Seed, true
		gen.rng = rand.New(rand.NewSource(o.Seed))
	default:
		gen.seed, gen.hasSeed = time.Now().UnixNano(), true
		gen.rng = rand.New(rand.NewSource(gen.seed))
	}

	gen.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"seed":   gen.seed,
		"pool":   gen.pool.Len(),
	}).Debug("maze: generator created")

	return gen, nil
}

// Step draws one candidate wall and processes it:
//   - neighbor off the grid: Skipped, nothing changes;
//   - cells already connected: Discarded, the wall stays to avoid a loop;
//   - otherwise: Opened, the wall is removed and the two regions merge.
//
// Each call consumes exactly one pool entry. Returns NoStep and
// ErrPoolExhausted if the pool is empty.
// Complexity: O(α(W×H)) amortized.
func (g *Generator) Step() (Outcome, error) {
	w, err := g.pool.Draw(g.rng)
	if err != nil {
		return NoStep, fmt.Errorf("maze: step: %w", err)
	}
	g.stats.Steps++

	owner, neighbor := g.grid.Adjacent(w)
	var out Outcome
	switch {
	case !g.grid.Contains(owner) || !g.grid.Contains(neighbor):
		out = Skipped
		g.stats.Skipped++
	case g.forest.SameSet(g.grid.Index(owner), g.grid.Index(neighbor)):
		out = Discarded
		g.stats.Discarded++
	default:
		g.walls.Open(w)
		g.forest.Union(g.grid.Index(owner), g.grid.Index(neighbor))
		out = Opened
		g.stats.Opened++
	}

	if g.debugEnabled() {
		g.log.WithFields(logrus.Fields{
			"wall":    w.String(),
			"outcome": out.String(),
			"classes": g.forest.Classes(),
		}).Debug("maze: step")
	}

	return out, nil
}

// Complete runs Step until the grid is a single region. It is a no-op once the
// maze is complete.
//
// A pool that runs dry while several regions remain cannot happen for a grid
// built by New; if it does, the wrapped ErrPoolExhausted is returned.
// Complexity: O(W×H·α(W×H)).
func (g *Generator) Complete() error {
	if g.Done() {
		return nil
	}
	for g.forest.Classes() > 1 {
		if _, err := g.Step(); err != nil {
			return fmt.Errorf("maze: complete with %d regions left: %w", g.forest.Classes(), err)
		}
	}

	g.log.WithFields(logrus.Fields{
		"steps":     g.stats.Steps,
		"opened":    g.stats.Opened,
		"discarded": g.stats.Discarded,
		"remaining": g.pool.Len(),
	}).Debug("maze: complete")

	return nil
}

// Done reports whether every cell is connected.
func (g *Generator) Done() bool { return g.forest.Classes() <= 1 }

// Classes returns the number of connected regions.
func (g *Generator) Classes() int { return g.forest.Classes() }

// SameSet reports whether a and b are connected by open passages. Cells off
// the grid are never connected to anything.
func (g *Generator) SameSet(a, b gridgraph.Cell) bool {
	if !g.grid.Contains(a) || !g.grid.Contains(b) {
		return false
	}

	return g.forest.SameSet(g.grid.Index(a), g.grid.Index(b))
}

// IsOpen reports whether w is open.
func (g *Generator) IsOpen(w gridgraph.Wall) bool { return g.walls.IsOpen(w) }

// Grid returns the maze topology.
func (g *Generator) Grid() *gridgraph.Grid { return g.grid }

// Seed returns the seed of the generator's private source. The second result is
// false when the source was supplied through WithRand.
func (g *Generator) Seed() (int64, bool) { return g.seed, g.hasSeed }

// Stats returns generation counters.
func (g *Generator) Stats() Stats {
	s := g.stats
	s.Remaining = g.pool.Len()
	s.Classes = g.forest.Classes()

	return s
}

// Snapshot returns the wall state and markers for rendering.
// Complexity: O(W×H).
func (g *Generator) Snapshot() Layout {
	return Layout{
		Walls:   g.walls.Snapshot(),
		Markers: g.Markers(),
	}
}

// Verify checks the current wall state is a perfect maze. See the package-level Verify.
func (g *Generator) Verify() error {
	return Verify(g.walls.Snapshot())
}

// levelEnabler is implemented by *logrus.Logger.
type levelEnabler interface {
	IsLevelEnabled(level logrus.Level) bool
}

// debugEnabled reports whether per-step traces would be emitted. Loggers that
// cannot report their level are assumed to want everything.
func (g *Generator) debugEnabled() bool {
	l, ok := g.log.(levelEnabler)

	return !ok || l.IsLevelEnabled(logrus.DebugLevel)
}
