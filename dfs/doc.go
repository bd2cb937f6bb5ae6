// Package dfs implements depth-first traversal over a core.Graph in two
// interchangeable forms: a recursive walk and an explicit-stack walk.
//
// Both produce the identical visitation order: the iterative form pushes
// each vertex's neighbors in reverse adjacency order, so the first-inserted
// neighbor is popped (and therefore visited) first, exactly as recursion
// would. Callers on very deep graphs should prefer DFSIterative, whose
// memory is bounded by the heap rather than the call stack.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer.
//	ErrVertexOutOfRange - start vertex outside [0, n).
//
// Complexity: O(V + E) time, O(V) memory (call stack or explicit stack).
package dfs
