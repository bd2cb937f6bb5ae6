// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph with non-negative edge weights.
//
// Vertices are settled in order of increasing tentative distance via a
// min-heap. Decrease-key is done lazily: improving a distance pushes a
// duplicate heap entry, and a popped entry whose distance exceeds the
// current best is stale and skipped. This is the standard correctness
// mechanism, not a cache.
//
// Contract for negative weights: a negative-weight edge is silently
// skipped during relaxation - never followed, never an error. Distances in
// the presence of negative edges are therefore undefined but the call
// never crashes and never relaxes through such an edge. Callers needing
// negative weights should use bellmanford.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer.
//	ErrVertexOutOfRange - source outside [0, n).
//
// Complexity: O((V + E) log V) time, O(V + E) memory (lazy heap entries).
package dijkstra
