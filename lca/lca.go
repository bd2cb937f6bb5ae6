package lca

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for ancestor queries.
var (
	// ErrEmptyTree is returned when the tree has no vertices.
	ErrEmptyTree = errors.New("lca: tree is empty")

	// ErrVertexOutOfRange is returned for vertices outside [0, n).
	ErrVertexOutOfRange = errors.New("lca: vertex out of range")

	// ErrNotATree is returned when the adjacency is not a single tree
	// rooted at the given root (a cycle or an unreachable vertex).
	ErrNotATree = errors.New("lca: adjacency is not a tree")
)

// LCA holds the binary-lifting tables for one rooted tree.
type LCA struct {
	n     int
	log   int
	depth []int
	// up[k][v] is v's 2^k-th ancestor, core.NoParent above the root.
	up [][]int
}

// NewFromTree preprocesses the tree given as vertex→neighbors adjacency,
// rooted at root. Parent entries in neighbor lists are tolerated (the
// walk skips the vertex it came from).
//
// Steps:
//  1. Validate shape, then one explicit-stack DFS from the root filling
//     depth and the immediate-parent row up[0]. Seeing a vertex twice is
//     a cycle, missing one is a forest: both are ErrNotATree.
//  2. Fill row k from row k-1: up[k][v] = up[k-1][up[k-1][v]].
//
// Complexity: O(n log n) time and memory.
func NewFromTree(tree [][]int, root int) (*LCA, error) {
	n := len(tree)
	if n == 0 {
		return nil, ErrEmptyTree
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root=%d, n=%d", ErrVertexOutOfRange, root, n)
	}

	logHeight := 1
	for 1<<logHeight <= n {
		logHeight++
	}

	l := &LCA{
		n:     n,
		log:   logHeight,
		depth: make([]int, n),
		up:    make([][]int, logHeight),
	}
	for k := range l.up {
		l.up[k] = make([]int, n)
		for v := range l.up[k] {
			l.up[k][v] = core.NoParent
		}
	}

	// Iterative DFS away from the root.
	visited := make([]bool, n)
	visited[root] = true
	stack := []int{root}
	seen := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range tree[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: neighbor=%d, n=%d", ErrVertexOutOfRange, v, n)
			}
			if v == l.up[0][u] {
				continue // edge back to the parent
			}
			if visited[v] {
				return nil, fmt.Errorf("%w: vertex %d reached twice", ErrNotATree, v)
			}
			visited[v] = true
			seen++
			l.up[0][v] = u
			l.depth[v] = l.depth[u] + 1
			stack = append(stack, v)
		}
	}
	if seen != n {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from root %d", ErrNotATree, seen, n, root)
	}

	for k := 1; k < logHeight; k++ {
		for v := 0; v < n; v++ {
			if mid := l.up[k-1][v]; mid != core.NoParent {
				l.up[k][v] = l.up[k-1][mid]
			}
		}
	}

	return l, nil
}

// Depth returns v's distance from the root.
func (l *LCA) Depth(v int) (int, error) {
	if v < 0 || v >= l.n {
		return 0, fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, l.n)
	}

	return l.depth[v], nil
}

// Query returns the lowest common ancestor of a and b.
// Complexity: O(log n).
func (l *LCA) Query(a, b int) (int, error) {
	if a < 0 || a >= l.n {
		return 0, fmt.Errorf("%w: a=%d, n=%d", ErrVertexOutOfRange, a, l.n)
	}
	if b < 0 || b >= l.n {
		return 0, fmt.Errorf("%w: b=%d, n=%d", ErrVertexOutOfRange, b, l.n)
	}

	// Lift the deeper vertex until depths match.
	if l.depth[a] < l.depth[b] {
		a, b = b, a
	}
	diff := l.depth[a] - l.depth[b]
	for k := 0; k < l.log; k++ {
		if diff&(1<<k) != 0 {
			a = l.up[k][a]
		}
	}
	if a == b {
		return a, nil
	}

	// Descend the table: keep both below the answer, then step up once.
	for k := l.log - 1; k >= 0; k-- {
		if l.up[k][a] != l.up[k][b] {
			a = l.up[k][a]
			b = l.up[k][b]
		}
	}

	return l.up[0][a], nil
}

// KthAncestor lifts v by k steps, bit by bit. Walking above the root
// returns core.NoParent (-1), mirroring the absent-entry convention of
// the table itself. A negative k is an error.
// Complexity: O(log n).
func (l *LCA) KthAncestor(v, k int) (int, error) {
	if v < 0 || v >= l.n {
		return 0, fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, l.n)
	}
	if k < 0 {
		return 0, fmt.Errorf("lca: negative ancestor count %d", k)
	}

	for i := 0; i < l.log && v != core.NoParent; i++ {
		if k&(1<<i) != 0 {
			v = l.up[i][v]
		}
	}
	if k >= 1<<l.log {
		// Any k at or beyond 2^log exceeds the tree height.
		v = core.NoParent
	}

	return v, nil
}
