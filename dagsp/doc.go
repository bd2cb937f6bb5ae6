// Package dagsp computes single-source shortest paths on a directed
// acyclic graph in linear time: obtain a topological order, then relax
// each vertex's outgoing arcs exactly once in that order.
//
// Negative weights are fine on a DAG - no cycle means no negative cycle.
// A cyclic input propagates toposort.ErrCyclic with no result.
//
// Complexity: O(V + E) time, O(V) memory.
package dagsp
