package dsu

// Forest is a union-by-rank, path-compressed disjoint-set forest.
//
// parent[i] == i marks a root; rank bounds the tree height of a root; size is
// only meaningful at roots and counts the members of the root's set.
type Forest struct {
	parent []int
	rank   []int
	size   []int
	sets   int
}

// New returns a Forest of n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as zero.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len reports the number of elements the forest was built over.
func (f *Forest) Len() int { return len(f.parent) }

// Sets reports the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the root of the set containing i and compresses the path
// from i to that root. i must be in [0, Len()).
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(i int) int {
	// Walk up to the root first.
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// Point every node on the path straight at the root.
	for f.parent[i] != root {
		next := f.parent[i]
		f.parent[i] = root
		i = next
	}

	return root
}

// Same reports whether i and j belong to the same set.
func (f *Forest) Same(i, j int) bool { return f.Find(i) == f.Find(j) }

// Union merges the sets containing i and j and reports whether a merge
// happened (false when they were already joined).
//
// The lower-rank root is attached under the higher-rank root. On equal ranks
// i's root goes under j's root and j's root gains one rank.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(i, j int) bool {
	x, y := f.Find(i), f.Find(j)
	if x == y {
		return false
	}
	f.sets--

	if f.rank[x] > f.rank[y] {
		f.parent[y] = x
		f.size[x] += f.size[y]

		return true
	}

	f.parent[x] = y
	f.size[y] += f.size[x]
	if f.rank[x] == f.rank[y] {
		f.rank[y]++
	}

	return true
}

// SizeOf returns the number of elements in the set containing i.
func (f *Forest) SizeOf(i int) int { return f.size[f.Find(i)] }
