package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange is returned when the source is outside [0, n).
	ErrVertexOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// Result holds single-source shortest-path output:
//   - Dist: minimum path weight from the source, core.Inf if unreachable.
//   - Parent: predecessor on a shortest path, core.NoParent when absent.
type Result struct {
	Dist   []int64
	Parent []int
}

// PathTo reconstructs the source→dest path by walking parent links.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: dest=%d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] >= core.Inf {
		return nil, fmt.Errorf("dijkstra: no path to %d", dest)
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

// Dijkstra computes shortest distances from src to every vertex of g.
//
// Steps:
//  1. Validate graph and source.
//  2. Initialize dist[v]=Inf, parent[v]=NoParent; dist[src]=0.
//  3. Pop the minimum entry; skip it if stale (entry dist != current best).
//  4. Relax each outgoing arc, skipping negative weights per the package
//     contract; a strict improvement pushes a fresh heap entry.
//  5. Stop when the heap drains.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, src int) (*Result, error) {
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

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{v: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		// Stale lazy-deletion entry: a better distance was already settled.
		if item.dist != res.Dist[item.v] {
			continue
		}
		for _, a := range g.Neighbors(item.v) {
			if a.Weight < 0 {
				// Contract: negative edges are ignored, not rejected.
				continue
			}
			if nd := item.dist + a.Weight; nd < res.Dist[a.To] {
				res.Dist[a.To] = nd
				res.Parent[a.To] = item.v
				heap.Push(&pq, nodeItem{v: a.To, dist: nd})
			}
		}
	}

	return res, nil
}

// nodeItem pairs a vertex with the distance it was pushed at.
type nodeItem struct {
	v    int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
