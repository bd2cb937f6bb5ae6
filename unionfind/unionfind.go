package unionfind

// UnionFind partitions [0, n) into disjoint sets, each identified by its
// root element. The zero value is unusable; construct with New.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New creates a partition of [0, n) into n singleton sets. A negative n is
// treated as zero.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

// Len returns the number of elements in the partition.
func (u *UnionFind) Len() int { return len(u.parent) }

// Count returns the number of live disjoint sets.
func (u *UnionFind) Count() int { return u.count }

// Find returns the root of x's set, compressing the path as it walks.
// x must lie in [0, n); out-of-range arguments return x unchanged so that
// callers comparing roots of invalid elements never observe a false merge.
func (u *UnionFind) Find(x int) int {
	if x < 0 || x >= len(u.parent) {
		return x
	}
	// Halving: point each visited element at its grandparent.
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Union merges the sets holding a and b, attaching the lower-rank root
// under the higher. It reports whether a merge occurred, i.e. whether a
// and b were previously in different sets.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if ra < 0 || ra >= len(u.parent) || rb < 0 || rb >= len(u.parent) {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	u.count--

	return true
}

// Connected reports whether a and b are currently in the same set.
func (u *UnionFind) Connected(a, b int) bool { return u.Find(a) == u.Find(b) }
