// Package lca answers lowest-common-ancestor and kth-ancestor queries on
// a rooted tree via binary lifting.
//
// The input is a tree adjacency (children or full neighbor lists both
// work; the build walks away from the root), independent of the weighted
// core.Graph. One iterative DFS computes depth and immediate parent, then
// an ancestor table of height ceil(log2 n)+1 is filled so that any query
// resolves in O(log n): equalize depths bit by bit, then descend the
// table top-down until the two pointers' ancestors diverge no longer.
//
// Errors:
//
//	ErrEmptyTree        - no vertices.
//	ErrVertexOutOfRange - root or query vertex outside [0, n).
//	ErrNotATree         - the adjacency reaches a vertex twice (cycle) or
//	                      not at all (forest).
//
// Complexity: build O(n log n) time and memory, queries O(log n).
package lca
