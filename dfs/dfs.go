package dfs

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for DFS traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange is returned when the start vertex is outside [0, n).
	ErrVertexOutOfRange = errors.New("dfs: start vertex out of range")
)

// DFS performs a recursive depth-first traversal from src and returns the
// preorder visitation sequence. Call-stack depth is proportional to the
// graph's depth from src; use DFSIterative for unbounded inputs.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, src int) ([]int, error) {
	if err := validate(g, src); err != nil {
		return nil, err
	}

	order := make([]int, 0, g.N())
	visited := make([]bool, g.N())
	var walk func(u int)
	walk = func(u int) {
		visited[u] = true
		order = append(order, u)
		for _, a := range g.Neighbors(u) {
			if !visited[a.To] {
				walk(a.To)
			}
		}
	}
	walk(src)

	return order, nil
}

// DFSIterative performs the same traversal with an explicit stack.
// Neighbors are pushed in reverse adjacency order so the emitted order
// matches DFS exactly. A vertex may be stacked more than once before its
// first visit; later pops are skipped.
// Complexity: O(V + E) time, O(V + E) worst-case stack memory.
func DFSIterative(g *core.Graph, src int) ([]int, error) {
	if err := validate(g, src); err != nil {
		return nil, err
	}

	order := make([]int, 0, g.N())
	visited := make([]bool, g.N())
	stack := []int{src}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)

		nbrs := g.Neighbors(u)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i].To] {
				stack = append(stack, nbrs[i].To)
			}
		}
	}

	return order, nil
}

func validate(g *core.Graph, src int) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(src) {
		return fmt.Errorf("%w: src=%d, n=%d", ErrVertexOutOfRange, src, g.N())
	}

	return nil
}
