package prim_kruskal

import (
	"github.com/graphkit-go/graphkit/core"
	"github.com/graphkit-go/graphkit/unionfind"
)

// Kruskal computes a minimum spanning tree by greedy edge acceptance.
//
// Steps:
//  1. Validate: non-nil, undirected, n > 0. n == 1 is the empty tree.
//  2. Take the deduplicated (u < v) edge set, already sorted by
//     (weight, u, v) for deterministic tie-breaking; self-loops are gone.
//  3. Accept each edge whose endpoints sit in different unionfind
//     components; stop once n-1 edges are in.
//  4. Fewer than n-1 accepted edges means ErrDisconnected.
//
// Complexity: O(E log E + E α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	n := g.N()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	uf := unionfind.New(n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range g.UndirectedEdges() {
		if !uf.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
