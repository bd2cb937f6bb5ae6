package dagsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit-go/graphkit/core"
	"github.com/graphkit-go/graphkit/dagsp"
	"github.com/graphkit-go/graphkit/toposort"
)

// TestShortestPath_Basic relaxes the weighted diamond in one sweep.
func TestShortestPath_Basic(t *testing.T) {
	g := core.New(4, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := dagsp.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3, 4}, res.Dist)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

// TestShortestPath_NegativeWeights exploits the DAG guarantee: negative
// arcs relax safely without any cycle risk.
func TestShortestPath_NegativeWeights(t *testing.T) {
	g := core.New(4, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(2, 1, -4))
	require.NoError(t, g.AddEdge(1, 3, 1))

	res, err := dagsp.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -2, 2, -1}, res.Dist)
}

// TestShortestPath_Cyclic propagates toposort.ErrCyclic with no result.
func TestShortestPath_Cyclic(t *testing.T) {
	g := core.New(3, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))

	res, err := dagsp.ShortestPath(g, 0)
	assert.ErrorIs(t, err, toposort.ErrCyclic)
	assert.Nil(t, res)
}

// TestShortestPath_UnreachableStaysInf: vertices before the source in the
// topological order, or in other components, keep the sentinel.
func TestShortestPath_UnreachableStaysInf(t *testing.T) {
	g := core.New(4, core.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := dagsp.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Inf, res.Dist[2])
	assert.Equal(t, core.Inf, res.Dist[3])

	_, err = res.PathTo(3)
	assert.Error(t, err)
}

// TestShortestPath_Validation covers nil graph, bad source, undirected.
func TestShortestPath_Validation(t *testing.T) {
	_, err := dagsp.ShortestPath(nil, 0)
	assert.ErrorIs(t, err, dagsp.ErrGraphNil)

	g := core.New(2, core.WithDirected())
	_, err = dagsp.ShortestPath(g, 9)
	assert.ErrorIs(t, err, dagsp.ErrVertexOutOfRange)

	gu := core.New(2)
	_, err = dagsp.ShortestPath(gu, 0)
	assert.ErrorIs(t, err, toposort.ErrUndirected)
}
