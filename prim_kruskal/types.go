// This file declares sentinel errors, the method selector, and the
// Compute dispatcher.
package prim_kruskal

import (
	"errors"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for MST computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrDirectedGraph is returned when the graph is directed; spanning
	// trees are defined on undirected graphs.
	ErrDirectedGraph = errors.New("prim_kruskal: MST requires an undirected graph")

	// ErrDisconnected is returned when fewer than n-1 tree edges can be
	// assembled (including the n == 0 case).
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrNegativeWeight is returned by Prim when an edge weight is
	// negative; its key comparison assumes non-negative weights.
	ErrNegativeWeight = errors.New("prim_kruskal: negative edge weight encountered")

	// ErrUnknownMethod is returned by Compute for a method name that is
	// neither MethodPrim nor MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")
)

// MethodPrim selects Prim's algorithm (grow from vertex 0 via min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort edges + union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures Compute.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// DefaultOptions returns MSTOptions selecting Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm named by opts.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate applies the shared preconditions for both algorithms.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if g.N() == 0 {
		return ErrDisconnected
	}

	return nil
}
