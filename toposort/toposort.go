package toposort

import (
	"errors"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrUndirected is returned for undirected graphs.
	ErrUndirected = errors.New("toposort: graph must be directed")

	// ErrCyclic is returned when the graph contains a cycle and therefore
	// admits no topological order.
	ErrCyclic = errors.New("toposort: graph is cyclic")
)

// Kahn computes a topological order by repeated zero-in-degree removal.
//
// Steps:
//  1. Count in-degrees over all arcs.
//  2. Seed a FIFO queue with zero-in-degree vertices in ascending index
//     order.
//  3. Dequeue, append to the order, decrement successors; enqueue any
//     successor reaching zero.
//  4. A short order means a cycle: return ErrCyclic, nil order.
//
// Complexity: O(V + E) time, O(V) memory.
func Kahn(g *core.Graph) ([]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	n := g.N()
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		for _, a := range g.Neighbors(u) {
			indeg[a.To]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		order = append(order, u)
		for _, a := range g.Neighbors(u) {
			indeg[a.To]--
			if indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCyclic
	}

	return order, nil
}

// visitation states for the DFS form.
const (
	unseen = iota
	open   // on the current traversal path
	closed
)

// DFS computes a topological order as the reverse of DFS postorder,
// scanning roots in ascending index order. The walk uses an explicit
// stack of (vertex, next-neighbor-index) frames; a neighbor found in the
// open state closes a cycle.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph) ([]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	n := g.N()
	state := make([]byte, n)
	post := make([]int, 0, n)

	type frame struct {
		v    int
		next int
	}
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if state[root] != unseen {
			continue
		}
		state[root] = open
		stack = append(stack, frame{v: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.Neighbors(top.v)
			if top.next < len(nbrs) {
				w := nbrs[top.next].To
				top.next++
				switch state[w] {
				case unseen:
					state[w] = open
					stack = append(stack, frame{v: w})
				case open:
					return nil, ErrCyclic
				}

				continue
			}
			// All descendants done: close and record postorder.
			state[top.v] = closed
			post = append(post, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse postorder is the topological order.
	order := make([]int, n)
	for i, v := range post {
		order[n-1-i] = v
	}

	return order, nil
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
