package disjoint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/disjoint"
)

// TestNew_Singletons verifies every element starts alone.
func TestNew_Singletons(t *testing.T) {
	f := disjoint.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Classes())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i))
		assert.Equal(t, 1, f.Size(i))
	}
	assert.False(t, f.SameSet(0, 4))
}

// TestNew_Negative treats a negative size as empty.
func TestNew_Negative(t *testing.T) {
	f := disjoint.New(-3)
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Classes())
}

// TestUnion_Semantics checks the return value and class accounting.
func TestUnion_Semantics(t *testing.T) {
	f := disjoint.New(4)

	assert.True(t, f.Union(0, 1))
	assert.Equal(t, 3, f.Classes())
	assert.True(t, f.SameSet(0, 1))

	// Already joined: no-op.
	assert.False(t, f.Union(1, 0))
	assert.Equal(t, 3, f.Classes())

	assert.True(t, f.Union(2, 3))
	assert.True(t, f.Union(3, 0))
	assert.Equal(t, 1, f.Classes())
	assert.Equal(t, 4, f.Size(2))
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			assert.True(t, f.SameSet(a, b))
		}
	}
}

// TestUnion_LargerClassKeepsRoot verifies union by size and the tie rule.
func TestUnion_LargerClassKeepsRoot(t *testing.T) {
	f := disjoint.New(5)

	// Tie: first argument's root wins.
	require.True(t, f.Union(0, 1))
	assert.Equal(t, 0, f.Find(1))

	// {0,1} is larger than {4}: root stays 0 even when passed second.
	require.True(t, f.Union(4, 1))
	assert.Equal(t, 0, f.Find(4))
	assert.Equal(t, 3, f.Size(0))
}

// TestUnion_RandomAgainstNaive compares the forest with a label-relabel baseline.
func TestUnion_RandomAgainstNaive(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	f := disjoint.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	classes := n

	for step := 0; step < 1000; step++ {
		a, b := r.Intn(n), r.Intn(n)
		merged := f.Union(a, b)
		la, lb := label[a], label[b]
		assert.Equal(t, la != lb, merged, "step %d union(%d,%d)", step, a, b)
		if la != lb {
			for i := range label {
				if label[i] == lb {
					label[i] = la
				}
			}
			classes--
		}
		require.Equal(t, classes, f.Classes())
	}
	for a := 0; a < n; a++ {
		b := r.Intn(n)
		assert.Equal(t, label[a] == label[b], f.SameSet(a, b))
	}
}
