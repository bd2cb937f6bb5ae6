// Package core defines the central Graph type used by every algorithm in
// graphkit: a fixed-size vertex set addressed by dense integer identifiers
// in [0, n), an adjacency list preserving insertion order, and an edge list
// recording every successful AddEdge call.
//
// The Graph is built incrementally by edge insertion and is then treated as
// a read-only snapshot by all algorithm packages: queries never mutate the
// Graph and always return freshly allocated result structures. Edge
// insertion is not synchronized; serialize construction externally before
// issuing queries from multiple goroutines.
//
// Adjacency iteration order is insertion order. Several algorithms
// (traversal orders, tie-breaking in shortest paths and spanning trees)
// depend on that ordering, so it is part of the contract, not an accident.
//
// Errors:
//
//	ErrVertexOutOfRange - an endpoint lies outside [0, n).
//
// Complexity: AddEdge is O(1) amortized; Neighbors, Edges and EdgeCount are
// O(1); UndirectedEdges is O(E log E) (it sorts the deduplicated set).
package core
