package scc

import (
	"errors"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for SCC decomposition.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrUndirected is returned for undirected graphs.
	ErrUndirected = errors.New("scc: graph must be directed")
)

// Kosaraju computes strongly connected components in two passes.
//
// Steps:
//  1. Explicit-stack DFS over the original graph records each vertex at
//     finish time (postorder), scanning roots in ascending index order.
//  2. Transpose the adjacency.
//  3. DFS over the transpose, seeding from vertices in decreasing finish
//     order; each tree grown is one component.
//
// Complexity: O(V + E) time, O(V) memory.
func Kosaraju(g *core.Graph) ([][]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	n := g.N()
	finish := make([]int, 0, n)
	visited := make([]bool, n)

	type frame struct {
		v    int
		next int
	}
	stack := make([]frame, 0, n)

	// Pass 1: postorder finish times on the original graph.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack = append(stack, frame{v: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.Neighbors(top.v)
			if top.next < len(nbrs) {
				w := nbrs[top.next].To
				top.next++
				if !visited[w] {
					visited[w] = true
					stack = append(stack, frame{v: w})
				}

				continue
			}
			finish = append(finish, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// Pass 2: harvest trees in the transpose, decreasing finish order.
	rev := g.ReverseAdjacency()
	for i := range visited {
		visited[i] = false
	}
	comps := make([][]int, 0)
	work := make([]int, 0, n)
	for i := len(finish) - 1; i >= 0; i-- {
		seed := finish[i]
		if visited[seed] {
			continue
		}
		comp := []int{}
		visited[seed] = true
		work = append(work[:0], seed)
		for len(work) > 0 {
			u := work[len(work)-1]
			work = work[:len(work)-1]
			comp = append(comp, u)
			for _, a := range rev[u] {
				if !visited[a.To] {
					visited[a.To] = true
					work = append(work, a.To)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrUndirected
	}

	return nil
}
