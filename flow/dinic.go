package flow

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for flow networks.
var (
	// ErrVertexOutOfRange is returned when an endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrNegativeCapacity is returned by AddArc for a negative capacity.
	ErrNegativeCapacity = errors.New("flow: negative arc capacity")

	// ErrSameSourceSink is returned by MaxFlow when source equals sink.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")
)

// Arc is one directed residual arc in the arena.
type Arc struct {
	// To is the head vertex.
	To int

	// Cap is the remaining residual capacity.
	Cap int64

	// Rev is the index of the paired reverse arc inside To's arena.
	Rev int
}

// Network is a flow network over the vertex set [0, n).
//
// MaxFlow mutates residual capacities in place; run it once per loaded
// network, or inspect residuals via Arcs afterwards. The Network is not
// safe for concurrent use.
type Network struct {
	n     int
	arcs  [][]Arc
	level []int
	iter  []int
}

// NewNetwork creates an empty flow network over [0, n). A negative n is
// treated as zero.
// Complexity: O(n).
func NewNetwork(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{
		n:     n,
		arcs:  make([][]Arc, n),
		level: make([]int, n),
		iter:  make([]int, n),
	}
}

// N returns the number of vertices.
func (f *Network) N() int { return f.n }

// AddArc inserts a directed arc u→v with the given capacity and its
// implicit zero-capacity reverse arc v→u, cross-linked by index.
// Complexity: O(1) amortized.
func (f *Network) AddArc(u, v int, capacity int64) error {
	if u < 0 || u >= f.n {
		return fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, f.n)
	}
	if v < 0 || v >= f.n {
		return fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, f.n)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: %d->%d cap=%d", ErrNegativeCapacity, u, v, capacity)
	}

	f.arcs[u] = append(f.arcs[u], Arc{To: v, Cap: capacity, Rev: len(f.arcs[v])})
	f.arcs[v] = append(f.arcs[v], Arc{To: u, Cap: 0, Rev: len(f.arcs[u]) - 1})

	return nil
}

// Arcs returns vertex u's residual arcs (forward and reverse mixed, in
// insertion order). The slice aliases internal storage; treat it as
// read-only.
func (f *Network) Arcs(u int) []Arc {
	if u < 0 || u >= f.n {
		return nil
	}

	return f.arcs[u]
}

// MaxFlow computes the maximum s→t flow, consuming residual capacity.
//
// Each round: build the level graph by BFS; if the sink is unlevelled the
// flow is maximal and the loop ends. Otherwise reset the per-vertex arc
// cursors and push blocking flow until the round yields nothing.
// Complexity: O(V^2 * E) time worst case.
func (f *Network) MaxFlow(s, t int) (int64, error) {
	if s < 0 || s >= f.n {
		return 0, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, s, f.n)
	}
	if t < 0 || t >= f.n {
		return 0, fmt.Errorf("%w: sink=%d, n=%d", ErrVertexOutOfRange, t, f.n)
	}
	if s == t {
		return 0, ErrSameSourceSink
	}

	var total int64
	for f.buildLevels(s, t) {
		for i := range f.iter {
			f.iter[i] = 0
		}
		for {
			pushed := f.push(s, t, core.Inf)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total, nil
}

// buildLevels BFS-labels every vertex with its positive-residual distance
// from s and reports whether t was reached.
func (f *Network) buildLevels(s, t int) bool {
	for i := range f.level {
		f.level[i] = -1
	}
	f.level[s] = 0
	queue := make([]int, 0, f.n)
	queue = append(queue, s)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, a := range f.arcs[u] {
			if a.Cap > 0 && f.level[a.To] < 0 {
				f.level[a.To] = f.level[u] + 1
				queue = append(queue, a.To)
			}
		}
	}

	return f.level[t] >= 0
}

// push DFS-sends up to limit flow from u toward t through the level
// graph, advancing u's arc cursor past exhausted arcs so each arc is
// tried at most once per phase.
func (f *Network) push(u, t int, limit int64) int64 {
	if u == t {
		return limit
	}
	for ; f.iter[u] < len(f.arcs[u]); f.iter[u]++ {
		a := &f.arcs[u][f.iter[u]]
		if a.Cap <= 0 || f.level[a.To] != f.level[u]+1 {
			continue
		}
		send := limit
		if a.Cap < send {
			send = a.Cap
		}
		if pushed := f.push(a.To, t, send); pushed > 0 {
			a.Cap -= pushed
			f.arcs[a.To][a.Rev].Cap += pushed

			return pushed
		}
	}

	return 0
}
