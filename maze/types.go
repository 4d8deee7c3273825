// Package maze defines generator options, sentinel errors and the values a
// rendering collaborator consumes.
package maze

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/pool"
	"github.com/katalvlaran/lvmaze/walls"
)

// ErrShape indicates a non-positive width or height.
var ErrShape = gridgraph.ErrShape

// ErrPoolExhausted indicates Step was called with no candidate walls left.
// Check Done or Stats().Remaining first.
var ErrPoolExhausted = pool.ErrExhausted

// ErrInvalidBoundary indicates a carve request that does not name an exterior
// wall adjacent to a cell of the grid, or uses an unknown label.
var ErrInvalidBoundary = errors.New("maze: invalid boundary")

// ErrNotPerfect indicates a wall layout that is not a spanning tree of its grid.
var ErrNotPerfect = errors.New("maze: layout is not a perfect maze")

// Outcome reports what one Step did with the wall it drew.
type Outcome int

const (
	// Opened means the wall joined two regions and was removed.
	Opened Outcome = iota
	// Discarded means both cells were already connected; the wall stays.
	Discarded
	// Skipped means the wall's neighbor lies off the grid. Never happens for a
	// pool built from Grid.InteriorWalls.
	Skipped

	// NoStep accompanies an error: no wall was drawn.
	NoStep Outcome = -1
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Opened:
		return "opened"
	case Discarded:
		return "discarded"
	case Skipped:
		return "skipped"
	case NoStep:
		return "none"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Label names a marker.
type Label string

const (
	// Start marks the entrance cell.
	Start Label = "start"
	// End marks the exit cell.
	End Label = "end"
)

// Marker pairs a labelled cell with the exterior wall carved next to it.
type Marker struct {
	Label Label
	Cell  gridgraph.Cell
	Wall  gridgraph.Wall
}

// Layout is everything a renderer needs: the wall state and the markers.
type Layout struct {
	Walls   walls.Snapshot
	Markers []Marker
}

// Stats summarises generation progress.
type Stats struct {
	Steps     int // Step calls that drew a wall
	Opened    int // interior walls removed
	Discarded int // walls kept because they would close a loop
	Skipped   int // walls ignored because a neighbor was off the grid
	Remaining int // candidate walls not yet drawn
	Classes   int // connected regions
}

// Options configures a Generator.
//
// Fields:
//
//	Seed    int64              - seed for a private math/rand source; used only when HasSeed.
//	HasSeed bool               - whether Seed was set.
//	Rand    *rand.Rand         - caller-owned source; takes precedence over Seed.
//	Logger  logrus.FieldLogger - diagnostics sink; nil discards.
type Options struct {
	Seed    int64
	HasSeed bool
	Rand    *rand.Rand
	Logger  logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithSeed makes generation reproducible: the same size and seed always yield
// the same walls.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.Seed = seed
		opts.HasSeed = true
	}
}

// WithRand hands the Generator a caller-owned random source. The Generator
// becomes its only user for as long as it runs; do not share r.
func WithRand(r *rand.Rand) Option {
	return func(opts *Options) {
		opts.Rand = r
	}
}

// WithLogger routes Debug-level generation traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// DefaultOptions returns the zero Options: no seed, no source and no logger.
// New resolves those to a clock seed and a logger that discards output.
func DefaultOptions() Options {
	return Options{}
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
