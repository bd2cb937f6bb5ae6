package bellmanford

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for Bellman-Ford execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrVertexOutOfRange is returned when the source is outside [0, n).
	ErrVertexOutOfRange = errors.New("bellmanford: source vertex out of range")
)

// Result holds Bellman-Ford output:
//   - Dist: minimum path weight from the source, core.Inf if unreachable.
//     Distances are meaningless when NegativeCycle is true.
//   - Parent: predecessor on a shortest path, core.NoParent when absent.
//   - NegativeCycle: true iff some cycle reachable from the source has
//     strictly negative total weight.
type Result struct {
	Dist          []int64
	Parent        []int
	NegativeCycle bool
}

// BellmanFord computes shortest distances from src over g's stored edges.
//
// Steps:
//  1. Validate graph and source.
//  2. Build the relaxation edge set: directed graphs use the edge list as
//     inserted; undirected graphs use the deduplicated (u < v) set, each
//     entry relaxed in both directions.
//  3. Run up to n-1 passes, each relaxing every edge whose tail is
//     reachable (dist < Inf); exit early after a quiet pass.
//  4. One verification pass: any remaining relaxation marks NegativeCycle.
//
// Complexity: O(V * E) time, O(V + E) memory.
func BellmanFord(g *core.Graph, src int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: src=%d, n=%d", ErrVertexOutOfRange, src, g.N())
	}

	n := g.N()
	res := &Result{
		Dist:   make([]int64, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = core.Inf
		res.Parent[i] = core.NoParent
	}
	res.Dist[src] = 0

	edges := g.UndirectedEdges()
	undirected := !g.Directed()

	relaxAll := func(record bool) bool {
		improved := false
		for _, e := range edges {
			if res.Dist[e.U] < core.Inf && res.Dist[e.U]+e.Weight < res.Dist[e.V] {
				improved = true
				if !record {
					return true
				}
				res.Dist[e.V] = res.Dist[e.U] + e.Weight
				res.Parent[e.V] = e.U
			}
			if !undirected {
				continue
			}
			// Mirror direction for the canonical undirected entry.
			if res.Dist[e.V] < core.Inf && res.Dist[e.V]+e.Weight < res.Dist[e.U] {
				improved = true
				if !record {
					return true
				}
				res.Dist[e.U] = res.Dist[e.V] + e.Weight
				res.Parent[e.U] = e.V
			}
		}

		return improved
	}

	for i := 0; i < n-1; i++ {
		if !relaxAll(true) {
			break
		}
	}
	res.NegativeCycle = relaxAll(false)

	return res, nil
}
