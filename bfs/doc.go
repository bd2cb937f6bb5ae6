// Package bfs provides the frontier-driven search family over a
// core.Graph: single-source BFS, multi-source BFS, and 0-1 BFS.
//
// BFS and MultiSource compute minimum edge-count distances (-1 when
// unreachable) plus parent links for path reconstruction, visiting
// neighbors in adjacency insertion order. ZeroOne is the deque variant for
// edge weights restricted to {0, 1}: zero-weight relaxations go to the
// front of the frontier and unit-weight relaxations to the back, giving
// weighted shortest paths in O(V + E) without a priority structure.
//
// Errors:
//
//	ErrGraphNil          - nil graph pointer.
//	ErrVertexOutOfRange  - a source vertex lies outside [0, n).
//	ErrNonBinaryWeight   - ZeroOne found an edge weight outside {0, 1}.
//
// Complexity: all three run in O(V + E) time and O(V) memory.
package bfs
