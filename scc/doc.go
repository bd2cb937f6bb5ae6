// Package scc decomposes a directed graph into strongly connected
// components by two independent algorithms: Kosaraju's two-pass method
// and Tarjan's single-pass low-link method.
//
// Both walks use explicit (vertex, next-neighbor-index) frames instead of
// recursion, so component extraction is safe on arbitrarily deep graphs.
// The two algorithms produce the same partition; component ordering and
// membership ordering differ and carry no meaning beyond grouping
// (Tarjan's component list comes out in reverse topological order of the
// condensation, a property some callers exploit but this package does not
// promise).
//
// Errors:
//
//	ErrGraphNil   - nil graph pointer.
//	ErrUndirected - undirected input; strong connectivity degenerates to
//	                plain connectivity there, which BFS/DFS already give.
//
// Complexity: both run in O(V + E) time and O(V) memory.
package scc
