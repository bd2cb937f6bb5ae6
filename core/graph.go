package core

import (
	"fmt"
	"sort"
)

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HasVertex reports whether v lies inside [0, n).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// EdgeCount returns the number of successful AddEdge calls.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge inserts the edge u→v with weight w. For an undirected graph the
// mirror arc v→u is inserted into v's adjacency as well, while the edge
// list records only the single canonical (u, v, w) entry.
//
// An endpoint outside [0, n) returns ErrVertexOutOfRange and leaves the
// graph untouched. Self-loops and parallel edges are permitted; algorithms
// that cannot use them skip them.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64, opts ...EdgeOption) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, g.n)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, g.n)
	}

	e := Edge{U: u, V: v, Weight: w, ID: NoID}
	for _, opt := range opts {
		opt(&e)
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})
	}
	g.edges = append(g.edges, e)

	return nil
}

// Neighbors returns u's adjacency in insertion order, or nil when u is out
// of range. The returned slice aliases internal storage and must not be
// modified by the caller.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []Arc {
	if !g.HasVertex(u) {
		return nil
	}

	return g.adj[u]
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// UndirectedEdges returns the deduplicated undirected edge set: one entry
// per adjacency pair with U < V, sorted by (Weight, U, V) for deterministic
// downstream tie-breaking. Self-loops are dropped (they can never appear
// with U < V). For a directed graph it returns Edges() unchanged.
// Complexity: O(E log E).
func (g *Graph) UndirectedEdges() []Edge {
	if g.directed {
		return g.Edges()
	}

	// Collect each pair once, canonical orientation U < V. Walking the
	// adjacency (rather than the edge list) matches how the mirrored arcs
	// are actually stored, so an edge added as (v, u) still canonicalizes.
	seen := make(map[[3]int64]struct{}, len(g.edges))
	out := make([]Edge, 0, len(g.edges))
	for u := 0; u < g.n; u++ {
		for _, a := range g.adj[u] {
			if u >= a.To {
				continue
			}
			key := [3]int64{int64(u), int64(a.To), a.Weight}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Edge{U: u, V: a.To, Weight: a.Weight, ID: NoID})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// ReverseAdjacency builds the transposed adjacency: for every arc u→v in
// the graph, the result holds v→u. Weights are preserved. Used by Kosaraju
// and available to callers needing the reverse graph.
// Complexity: O(V + E).
func (g *Graph) ReverseAdjacency() [][]Arc {
	rev := make([][]Arc, g.n)
	for u := 0; u < g.n; u++ {
		for _, a := range g.adj[u] {
			rev[a.To] = append(rev[a.To], Arc{To: u, Weight: a.Weight})
		}
	}

	return rev
}
