package scc

import "github.com/graphkit-go/graphkit/core"

// Tarjan computes strongly connected components in a single pass,
// maintaining per-vertex discovery time and low-link plus an explicit
// stack of currently open vertices. A vertex whose low-link equals its
// own discovery time is a component root: the open stack pops down to and
// including it.
//
// The traversal itself runs on (vertex, next-neighbor-index) frames; each
// frame's exhaustion propagates its low-link to its parent frame.
// Complexity: O(V + E) time, O(V) memory.
func Tarjan(g *core.Graph) ([][]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	n := g.N()
	const unvisited = -1
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = unvisited
	}
	onStack := make([]bool, n)
	open := make([]int, 0, n) // currently open vertices
	timer := 0
	comps := make([][]int, 0)

	type frame struct {
		v    int
		next int
	}
	frames := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if disc[root] != unvisited {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		onStack[root] = true
		open = append(open, root)
		frames = append(frames, frame{v: root})

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			nbrs := g.Neighbors(top.v)
			if top.next < len(nbrs) {
				w := nbrs[top.next].To
				top.next++
				switch {
				case disc[w] == unvisited:
					// Tree edge: open w and descend.
					disc[w], low[w] = timer, timer
					timer++
					onStack[w] = true
					open = append(open, w)
					frames = append(frames, frame{v: w})
				case onStack[w]:
					// Back or cross edge into the open set.
					if disc[w] < low[top.v] {
						low[top.v] = disc[w]
					}
				}

				continue
			}

			// top.v is fully explored: maybe close a component, then
			// propagate its low-link upward.
			v := top.v
			frames = frames[:len(frames)-1]
			if low[v] == disc[v] {
				comp := []int{}
				for {
					w := open[len(open)-1]
					open = open[:len(open)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				comps = append(comps, comp)
			}
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	return comps, nil
}
