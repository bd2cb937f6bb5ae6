// This file declares the BFS result types and sentinel errors.
package bfs

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for the BFS family.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when a source lies outside [0, n).
	ErrVertexOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrNonBinaryWeight is returned by ZeroOne when an edge weight is
	// neither 0 nor 1.
	ErrNonBinaryWeight = errors.New("bfs: edge weight outside {0,1}")
)

// Result holds the outcome of an unweighted BFS:
//   - Dist: minimum edge count from the nearest source, -1 if unreachable.
//   - Parent: predecessor in the BFS tree, core.NoParent for sources and
//     unreachable vertices.
//   - Order: vertices in dequeue (visit) sequence.
type Result struct {
	Dist   []int
	Parent []int
	Order  []int
}

// PathTo reconstructs the source→dest path by walking parent links.
// Returns an error when dest is out of range or unreachable.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: dest=%d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}

	return walkParents(r.Parent, dest), nil
}

// Result01 holds the outcome of a 0-1 BFS:
//   - Dist: weighted distance from the source, core.Inf if unreachable.
//   - Parent: predecessor on a shortest path, core.NoParent when absent.
type Result01 struct {
	Dist   []int64
	Parent []int
}

// PathTo reconstructs the source→dest path by walking parent links.
func (r *Result01) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: dest=%d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] >= core.Inf {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}

	return walkParents(r.Parent, dest), nil
}

// walkParents collects dest..source via parent links, then reverses.
func walkParents(parent []int, dest int) []int {
	path := []int{}
	for v := dest; v != core.NoParent; v = parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
