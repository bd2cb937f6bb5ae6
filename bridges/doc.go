// Package bridges finds the bridges and articulation points of an
// undirected graph with a single low-link DFS over all components.
//
// A tree edge (u, v) with v a DFS child of u is a bridge iff
// low[v] > tin[u]: nothing in v's subtree reaches above u except through
// that edge. A non-root vertex u is an articulation point iff some child
// v satisfies low[v] >= tin[u]; a DFS root is one iff it has more than one
// DFS child.
//
// The parent edge is skipped by vertex, so a parallel copy of the parent
// edge is skipped too and a doubled edge still reports as a bridge;
// callers modelling multi-edges should deduplicate first.
//
// The walk uses explicit (vertex, parent, next-neighbor-index) frames, so
// deep graphs cannot exhaust the call stack.
//
// Errors:
//
//	ErrGraphNil      - nil graph pointer.
//	ErrDirectedGraph - directed input; low-link cut analysis is defined on
//	                   undirected graphs.
//
// Complexity: O(V + E) time, O(V) memory.
package bridges
