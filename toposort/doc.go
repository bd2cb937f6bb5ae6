// Package toposort provides topological ordering of directed graphs in
// two classic forms: Kahn's in-degree algorithm and DFS postorder
// reversal.
//
// Kahn seeds its queue with every zero-in-degree vertex in ascending
// vertex order, so its output is deterministic and favors low indices.
// The DFS form uses an explicit work stack of (vertex, next-neighbor)
// frames and detects cycles by tracking which vertices are still open on
// the traversal path.
//
// A cyclic graph yields ErrCyclic with a nil order; an undirected graph
// yields ErrUndirected (every undirected edge is a 2-cycle, so ordering
// is meaningless).
//
// Complexity: both run in O(V + E) time and O(V) memory.
package toposort
