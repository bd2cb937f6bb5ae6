package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for Floyd-Warshall execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("floydwarshall: graph is nil")

	// ErrVertexOutOfRange is returned by Path for bad endpoints.
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex out of range")
)

// Result holds the all-pairs matrices:
//   - Dist[i][j]: minimum path weight i→j, core.Inf when unreachable,
//     0 on the diagonal unless a negative cycle pulls it below.
//   - Next[i][j]: first hop of a shortest i→j path, core.NoParent when
//     no path exists.
type Result struct {
	Dist [][]int64
	Next [][]int
}

// FloydWarshall runs the k-outer triple loop over g.
//
// Steps:
//  1. Seed Dist[i][i]=0, Next[i][i]=i, and every direct arc (parallel
//     arcs keep the lightest).
//  2. For each intermediate k, skip rows with Dist[i][k]=Inf, otherwise
//     improve Dist[i][j] through k and redirect Next[i][j] to Next[i][k].
//
// Complexity: O(V^3) time, O(V^2) memory.
func FloydWarshall(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.N()
	res := &Result{
		Dist: make([][]int64, n),
		Next: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = make([]int64, n)
		res.Next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			res.Dist[i][j] = core.Inf
			res.Next[i][j] = core.NoParent
		}
		res.Dist[i][i] = 0
		res.Next[i][i] = i
	}
	for i := 0; i < n; i++ {
		for _, a := range g.Neighbors(i) {
			if a.Weight < res.Dist[i][a.To] {
				res.Dist[i][a.To] = a.Weight
				res.Next[i][a.To] = a.To
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if res.Dist[i][k] >= core.Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if res.Dist[k][j] >= core.Inf {
					continue
				}
				if nd := res.Dist[i][k] + res.Dist[k][j]; nd < res.Dist[i][j] {
					res.Dist[i][j] = nd
					res.Next[i][j] = res.Next[i][k]
				}
			}
		}
	}

	return res, nil
}

// HasNegativeCycle reports whether any vertex can reach itself at
// negative total weight.
func (r *Result) HasNegativeCycle() bool {
	for i := range r.Dist {
		if r.Dist[i][i] < 0 {
			return true
		}
	}

	return false
}

// Path reconstructs a shortest i→j path by repeated next-hop lookup.
// Returns an error for out-of-range endpoints and a nil path when j is
// unreachable from i.
// Complexity: O(path length).
func (r *Result) Path(i, j int) ([]int, error) {
	n := len(r.Dist)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("%w: i=%d, j=%d, n=%d", ErrVertexOutOfRange, i, j, n)
	}
	if r.Next[i][j] == core.NoParent {
		return nil, fmt.Errorf("floydwarshall: no path from %d to %d", i, j)
	}

	path := []int{i}
	for i != j {
		i = r.Next[i][j]
		path = append(path, i)
	}

	return path, nil
}
