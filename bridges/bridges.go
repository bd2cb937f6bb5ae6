package bridges

import (
	"errors"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for cut analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bridges: graph is nil")

	// ErrDirectedGraph is returned for directed graphs.
	ErrDirectedGraph = errors.New("bridges: graph must be undirected")
)

// Result holds the cut structure of the graph:
//   - Bridges: tree edges whose removal disconnects their endpoints, as
//     (parent, child) pairs in DFS completion order.
//   - Articulation: vertices whose removal increases the component count,
//     ascending.
type Result struct {
	Bridges      [][2]int
	Articulation []int
}

// Find runs one low-link DFS over every component of g, applying the cut
// rules as each subtree completes:
//   - bridge (p, v) iff low[v] > tin[p]
//   - non-root p is an articulation point iff low[v] >= tin[p] for some
//     child v
//   - a root is an articulation point iff it has more than one DFS child
//
// Complexity: O(V + E) time, O(V) memory.
func Find(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	n := g.N()
	const unvisited = -1
	tin := make([]int, n)
	low := make([]int, n)
	for i := range tin {
		tin[i] = unvisited
	}
	children := make([]int, n)
	isArt := make([]bool, n)
	timer := 0

	res := &Result{Bridges: [][2]int{}, Articulation: []int{}}

	type frame struct {
		v      int
		parent int
		next   int
	}
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if tin[root] != unvisited {
			continue
		}
		tin[root], low[root] = timer, timer
		timer++
		stack = append(stack, frame{v: root, parent: core.NoParent})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.Neighbors(top.v)
			if top.next < len(nbrs) {
				w := nbrs[top.next].To
				top.next++
				if w == top.parent {
					// Parent edge, skipped by vertex (parallel copies too).
					continue
				}
				if tin[w] != unvisited {
					// Back edge: the ancestor's discovery time caps low.
					if tin[w] < low[top.v] {
						low[top.v] = tin[w]
					}

					continue
				}
				children[top.v]++
				tin[w], low[w] = timer, timer
				timer++
				stack = append(stack, frame{v: w, parent: top.v})

				continue
			}

			// Subtree of top.v complete: pop, then apply the cut rules at
			// its parent, whose frame is now on top.
			v, p := top.v, top.parent
			stack = stack[:len(stack)-1]
			if p == core.NoParent {
				if children[v] > 1 {
					isArt[v] = true
				}

				continue
			}
			if low[v] < low[p] {
				low[p] = low[v]
			}
			if low[v] > tin[p] {
				res.Bridges = append(res.Bridges, [2]int{p, v})
			}
			pIsRoot := stack[len(stack)-1].parent == core.NoParent
			if !pIsRoot && low[v] >= tin[p] {
				isArt[p] = true
			}
		}
	}

	for v := 0; v < n; v++ {
		if isArt[v] {
			res.Articulation = append(res.Articulation, v)
		}
	}

	return res, nil
}
