package pool

import (
	"errors"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrExhausted indicates a Draw on an empty pool.
var ErrExhausted = errors.New("pool: candidate pool exhausted")

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Pool is a swap-remove backed multiset of walls.
type Pool struct {
	walls []gridgraph.Wall
}

// New returns a Pool holding a copy of walls.
// Complexity: O(len(walls)).
func New(walls []gridgraph.Wall) *Pool {
	cp := make([]gridgraph.Wall, len(walls))
	copy(cp, walls)

	return &Pool{walls: cp}
}

// Len returns the number of remaining walls.
func (p *Pool) Len() int { return len(p.walls) }

// IsEmpty reports whether no walls remain.
func (p *Pool) IsEmpty() bool { return len(p.walls) == 0 }

// Draw removes and returns one remaining wall chosen by src.Intn(Len()).
// Returns ErrExhausted if the pool is empty.
// Complexity: O(1).
func (p *Pool) Draw(src Source) (gridgraph.Wall, error) {
	n := len(p.walls)
	if n == 0 {
		return gridgraph.Wall{}, ErrExhausted
	}
	i := src.Intn(n)
	w := p.walls[i]
	p.walls[i] = p.walls[n-1]
	p.walls = p.walls[:n-1]

	return w, nil
}
