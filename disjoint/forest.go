package disjoint

// Forest is a union-find over indices 0..Len()-1.
type Forest struct {
	parent  []int
	size    []int
	classes int
}

// New returns a Forest of n singleton classes. A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent:  make([]int, n),
		size:    make([]int, n),
		classes: n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Classes returns the current number of distinct classes.
// Complexity: O(1).
func (f *Forest) Classes() int { return f.classes }

// Find returns the representative of i's class, halving the path on the way up.
func (f *Forest) Find(i int) int {
	for f.parent[i] != i {
		// Path halving: point i at its grandparent and step there.
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}

	return i
}

// SameSet reports whether a and b are in the same class.
func (f *Forest) SameSet(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Size returns the number of elements in i's class.
func (f *Forest) Size(i int) int {
	return f.size[f.Find(i)]
}

// Union merges the classes of a and b. It returns false, and changes nothing,
// if they are already joined.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	// Larger class absorbs the smaller; ties keep a's root.
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.classes--

	return true
}
