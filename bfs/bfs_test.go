package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit-go/graphkit/bfs"
	"github.com/graphkit-go/graphkit/core"
)

// buildDiamond constructs the directed diamond from the end-to-end
// scenario: 0→1, 0→2, 1→2, 2→3, unit weights.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(4, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	return g
}

// TestBFS_DiamondScenario checks the end-to-end distances [0,1,1,2].
func TestBFS_DiamondScenario(t *testing.T) {
	res, err := bfs.BFS(buildDiamond(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 1, 2}, res.Dist)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestBFS_Unreachable verifies the -1 sentinel and missing parent.
func TestBFS_Unreachable(t *testing.T) {
	g := core.New(3, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Dist[2])
	assert.Equal(t, core.NoParent, res.Parent[2])

	_, err = res.PathTo(2)
	assert.Error(t, err)
}

// TestBFS_PathTo reconstructs 0→2→3 through the diamond (2 is reached via
// the direct 0→2 arc first, per insertion order).
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(buildDiamond(t), 0)
	require.NoError(t, err)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
}

// TestBFS_TriangleProperty checks dist[v] <= dist[u]+1 across every edge.
func TestBFS_TriangleProperty(t *testing.T) {
	g := core.New(6)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		if res.Dist[e.U] >= 0 {
			assert.LessOrEqual(t, res.Dist[e.V], res.Dist[e.U]+1,
				"edge %d->%d violates BFS layering", e.U, e.V)
		}
	}
}

// TestBFS_Validation covers the nil-graph and bad-source errors.
func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.New(2)
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}

// TestMultiSource seeds both ends of a path; distances meet in the middle.
func TestMultiSource(t *testing.T) {
	g := core.New(5)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	res, err := bfs.MultiSource(g, []int{0, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, res.Dist)
}

// TestMultiSource_DuplicatesHarmless verifies repeated sources change
// nothing.
func TestMultiSource_DuplicatesHarmless(t *testing.T) {
	g := core.New(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	res, err := bfs.MultiSource(g, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Dist)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestMultiSource_BadSource fails the whole call on any bad source.
func TestMultiSource_BadSource(t *testing.T) {
	g := core.New(3)
	_, err := bfs.MultiSource(g, []int{0, 7})
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}
