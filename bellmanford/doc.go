// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm, the member of the shortest-path family that
// accepts negative edge weights and reports negative cycles.
//
// The stored edge list is relaxed in up to n-1 full passes, stopping early
// as soon as a pass makes no improvement. A final verification pass that
// can still relax any edge reachable from the source sets the
// NegativeCycle flag - a normal result, not an error.
//
// For undirected graphs the deduplicated (u < v) edge set is relaxed in
// both directions. Note that a negative-weight undirected edge is
// inherently a negative 2-cycle; callers must not add one.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer.
//	ErrVertexOutOfRange - source outside [0, n).
//
// Complexity: O(V * E) time worst case (early exit helps sparse graphs),
// O(V + E) memory.
package bellmanford
