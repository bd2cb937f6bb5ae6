package bfs

import (
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// ZeroOne computes single-source shortest paths on a graph whose edge
// weights are all 0 or 1, using a double-ended frontier: a zero-weight
// relaxation re-enters at the front (same layer), a unit-weight relaxation
// at the back (next layer). The first time a vertex leaves the deque its
// distance is final, so no priority structure is needed.
//
// All edge weights are pre-scanned; any weight outside {0, 1} fails fast
// with ErrNonBinaryWeight.
// Complexity: O(V + E) time, O(V) memory.
func ZeroOne(g *core.Graph, src int) (*Result01, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, src, g.N())
	}
	for _, e := range g.Edges() {
		if e.Weight != 0 && e.Weight != 1 {
			return nil, fmt.Errorf("%w: edge %d->%d weight=%d", ErrNonBinaryWeight, e.U, e.V, e.Weight)
		}
	}

	n := g.N()
	res := &Result01{
		Dist:   make([]int64, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = core.Inf
		res.Parent[i] = core.NoParent
	}
	res.Dist[src] = 0

	dq := newDeque(n)
	dq.pushFront(src)
	for dq.len() > 0 {
		u := dq.popFront()
		for _, a := range g.Neighbors(u) {
			if nd := res.Dist[u] + a.Weight; nd < res.Dist[a.To] {
				res.Dist[a.To] = nd
				res.Parent[a.To] = u
				if a.Weight == 0 {
					dq.pushFront(a.To)
				} else {
					dq.pushBack(a.To)
				}
			}
		}
	}

	return res, nil
}

// deque is a grow-only ring buffer of vertex ids; just enough surface for
// the 0-1 frontier.
type deque struct {
	buf        []int
	head, size int
}

func newDeque(capacity int) *deque {
	if capacity < 1 {
		capacity = 1
	}

	return &deque{buf: make([]int, capacity)}
}

func (d *deque) len() int { return d.size }

func (d *deque) grow() {
	if d.size < len(d.buf) {
		return
	}
	next := make([]int, 2*len(d.buf))
	for i := 0; i < d.size; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}

func (d *deque) pushFront(v int) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.size++
}

func (d *deque) pushBack(v int) {
	d.grow()
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
}

func (d *deque) popFront() int {
	v := d.buf[d.head]
	d.head = (d.head + 1) % len(d.buf)
	d.size--

	return v
}
