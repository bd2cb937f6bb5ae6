package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit-go/graphkit/core"
	"github.com/graphkit-go/graphkit/dfs"
)

// TestDFS_PreorderFollowsInsertion verifies the recursive walk dives into
// the first-inserted neighbor before its siblings.
func TestDFS_PreorderFollowsInsertion(t *testing.T) {
	g := core.New(6, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 4, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(4, 5, 1))

	order, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)
}

// TestDFSIterative_MatchesRecursive is the core contract: both variants
// emit the same order, here on a deterministic random graph.
func TestDFSIterative_MatchesRecursive(t *testing.T) {
	const n = 60
	g := core.New(n, core.WithDirected())
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 4*n; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, 1))
	}

	rec, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	it, err := dfs.DFSIterative(g, 0)
	require.NoError(t, err)
	assert.Equal(t, rec, it)
}

// TestDFS_UndirectedCycle stays on unvisited vertices only.
func TestDFS_UndirectedCycle(t *testing.T) {
	g := core.New(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 1))

	order, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)

	it, err := dfs.DFSIterative(g, 0)
	require.NoError(t, err)
	assert.Equal(t, order, it)
}

// TestDFS_Validation covers nil graphs and out-of-range sources for both
// variants.
func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.DFSIterative(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.New(2)
	_, err = dfs.DFS(g, 2)
	assert.ErrorIs(t, err, dfs.ErrVertexOutOfRange)
	_, err = dfs.DFSIterative(g, -1)
	assert.ErrorIs(t, err, dfs.ErrVertexOutOfRange)
}

// TestDFS_SingleVertex visits just the source on an edgeless graph.
func TestDFS_SingleVertex(t *testing.T) {
	g := core.New(1)
	order, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, order)
}
