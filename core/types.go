// This file declares Arc, Edge, Graph, their options, sentinel errors,
// the Inf distance sentinel, and the New constructor.
package core

import (
	"errors"
	"math"
)

// Inf is the "unreachable" distance sentinel shared by the weighted
// shortest-path packages. It is a quarter of the int64 range so that a
// relaxation dist[u]+w cannot overflow before the dist[u] < Inf guard
// rejects it.
const Inf int64 = math.MaxInt64 / 4

// NoParent marks the absence of a predecessor in parent arrays and the
// absence of a next hop in reconstruction tables.
const NoParent = -1

// NoID is the edge ID recorded when the caller supplies none.
const NoID = -1

// ErrVertexOutOfRange indicates an operation referenced a vertex outside
// the graph's [0, n) identifier range.
var ErrVertexOutOfRange = errors.New("core: vertex out of range")

// Arc is a single adjacency entry: the destination vertex and the weight
// of the edge leading to it.
type Arc struct {
	// To is the destination vertex identifier.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// Edge records one successful AddEdge call.
//
// For undirected graphs the edge list holds only this single canonical
// entry even though both adjacency lists were updated; derive the
// deduplicated undirected edge set via UndirectedEdges.
type Edge struct {
	// U is the first endpoint (the source for directed graphs).
	U int

	// V is the second endpoint (the destination for directed graphs).
	V int

	// Weight is the cost of the edge.
	Weight int64

	// ID is the caller-supplied identifier, NoID when absent.
	ID int
}

// Graph is the in-memory weighted graph snapshot.
//
// Vertices are the integers [0, n); n is fixed at construction. The graph
// is either directed or undirected as a whole; undirected insertion
// mirrors each arc into both adjacency lists.
type Graph struct {
	n        int
	directed bool
	adj      [][]Arc
	edges    []Edge
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes the graph directed; edges run U→V only.
// The default is undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// EdgeOption configures a single edge as it is added.
type EdgeOption func(*Edge)

// WithEdgeID attaches a caller-supplied identifier to the edge.
func WithEdgeID(id int) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// New creates a Graph over the vertex set [0, n). A negative n is treated
// as zero. By default the graph is undirected.
// Complexity: O(n).
func New(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:   n,
		adj: make([][]Arc, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
