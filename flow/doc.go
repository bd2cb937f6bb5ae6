// Package flow implements maximum flow with Dinic's algorithm on a
// dedicated flow network, separate from the weighted core.Graph.
//
// Arcs live in per-vertex arenas: every AddArc appends the forward arc to
// u's list and a zero-capacity reverse arc to v's list, each storing the
// index of its pair, so residual updates are plain index lookups with no
// pointer aliasing. Capacities and flow are non-negative int64.
//
// MaxFlow alternates two phases until the sink becomes unreachable:
//
//  1. BFS builds the level graph - the distance from the source using
//     only positive-residual arcs.
//  2. DFS pushes blocking flow along arcs that advance exactly one
//     level, with a per-vertex "next arc to try" cursor so each arc is
//     reconsidered at most once per phase.
//
// Errors:
//
//	ErrVertexOutOfRange - an endpoint outside [0, n).
//	ErrNegativeCapacity - AddArc with a negative capacity.
//	ErrSameSourceSink   - MaxFlow with s == t.
//
// Complexity: O(V^2 * E) time in general, O(E * sqrt(V)) on
// unit-capacity networks; O(V + E) memory.
package flow
