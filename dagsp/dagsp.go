package dagsp

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
	"github.com/graphkit-go/graphkit/toposort"
)

// Sentinel errors for DAG shortest-path execution. Cyclic inputs surface
// as toposort.ErrCyclic; undirected inputs as toposort.ErrUndirected.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dagsp: graph is nil")

	// ErrVertexOutOfRange is returned when the source is outside [0, n).
	ErrVertexOutOfRange = errors.New("dagsp: source vertex out of range")
)

// Result holds DAG shortest-path output:
//   - Dist: minimum path weight from the source, core.Inf if unreachable.
//   - Parent: predecessor on a shortest path, core.NoParent when absent.
//   - Order: the topological order the sweep relaxed in.
type Result struct {
	Dist   []int64
	Parent []int
	Order  []int
}

// PathTo reconstructs the source→dest path by walking parent links.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: dest=%d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] >= core.Inf {
		return nil, fmt.Errorf("dagsp: no path to %d", dest)
	}
	path := []int{}
	for v := dest; v != core.NoParent; v = r.Parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPath relaxes every arc exactly once, sweeping vertices in
// DFS-topological order and skipping vertices still at Inf (not yet
// reached, so their arcs cannot improve anything).
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, src int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: src=%d, n=%d", ErrVertexOutOfRange, src, g.N())
	}

	order, err := toposort.DFS(g)
	if err != nil {
		return nil, err
	}

	n := g.N()
	res := &Result{
		Dist:   make([]int64, n),
		Parent: make([]int, n),
		Order:  order,
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = core.Inf
		res.Parent[i] = core.NoParent
	}
	res.Dist[src] = 0

	for _, u := range order {
		if res.Dist[u] >= core.Inf {
			continue
		}
		for _, a := range g.Neighbors(u) {
			if nd := res.Dist[u] + a.Weight; nd < res.Dist[a.To] {
				res.Dist[a.To] = nd
				res.Parent[a.To] = u
			}
		}
	}

	return res, nil
}
