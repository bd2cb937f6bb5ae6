package bfs

import (
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// BFS runs breadth-first search on g from the single source src.
// Returns ErrGraphNil for a nil graph and ErrVertexOutOfRange for a bad
// source.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, src int) (*Result, error) {
	return MultiSource(g, []int{src})
}

// MultiSource runs breadth-first search seeded with every vertex in
// sources at distance 0 simultaneously. Duplicate sources are harmless;
// any out-of-range source fails the whole call. Distances are unique per
// vertex, so tie-breaking among sources does not affect Dist.
// Complexity: O(V + E) time, O(V) memory.
func MultiSource(g *core.Graph, sources []int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.N()
	res := &Result{
		Dist:   make([]int, n),
		Parent: make([]int, n),
		Order:  make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = -1
		res.Parent[i] = core.NoParent
	}

	// Seed the frontier. A source repeated in the slice is already at
	// distance 0 and is skipped.
	queue := make([]int, 0, n)
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, s, n)
		}
		if res.Dist[s] == -1 {
			res.Dist[s] = 0
			queue = append(queue, s)
		}
	}

	// FIFO frontier; head index avoids re-slicing churn.
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		res.Order = append(res.Order, u)
		for _, a := range g.Neighbors(u) {
			if res.Dist[a.To] == -1 {
				res.Dist[a.To] = res.Dist[u] + 1
				res.Parent[a.To] = u
				queue = append(queue, a.To)
			}
		}
	}

	return res, nil
}
