package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Prim computes a minimum spanning tree grown from vertex 0.
//
// Steps:
//  1. Validate: non-nil, undirected, n > 0, no negative weights (their
//     presence breaks the cheapest-connection key). n == 1 is the empty
//     tree.
//  2. key[v] is the cheapest known weight connecting v to the tree;
//     vertex 0 starts at key 0.
//  3. Pop the minimum key; a vertex already in the tree is a stale
//     lazy-deletion entry and is discarded. Otherwise include it, charge
//     its key to the total, and record the connecting parent edge.
//  4. Scan the new vertex's arcs, improving keys of out-of-tree
//     neighbors.
//  5. Fewer than n included vertices means ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}
	n := g.N()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := 0; i < n; i++ {
		key[i] = core.Inf
		parent[i] = core.NoParent
	}
	key[0] = 0

	pq := make(keyPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, keyItem{v: 0, key: 0})

	mst := make([]core.Edge, 0, n-1)
	var total int64
	included := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(keyItem)
		if inTree[item.v] {
			// Stale lazy-deletion entry.
			continue
		}
		inTree[item.v] = true
		included++
		total += key[item.v]
		if parent[item.v] != core.NoParent {
			mst = append(mst, core.Edge{
				U:      parent[item.v],
				V:      item.v,
				Weight: key[item.v],
				ID:     core.NoID,
			})
		}

		for _, a := range g.Neighbors(item.v) {
			if !inTree[a.To] && a.Weight < key[a.To] {
				key[a.To] = a.Weight
				parent[a.To] = item.v
				heap.Push(&pq, keyItem{v: a.To, key: a.Weight})
			}
		}
	}

	if included < n {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// keyItem pairs a vertex with the connecting-edge weight it was pushed at.
type keyItem struct {
	v   int
	key int64
}

// keyPQ is a min-heap of keyItem ordered by key ascending.
type keyPQ []keyItem

func (pq keyPQ) Len() int            { return len(pq) }
func (pq keyPQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq keyPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(keyItem)) }
func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
