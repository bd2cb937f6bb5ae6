package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit-go/graphkit/flow"
)

// TestMaxFlow_Classic is the textbook 6-vertex network with max flow 23.
func TestMaxFlow_Classic(t *testing.T) {
	f := flow.NewNetwork(6)
	require.NoError(t, f.AddArc(0, 1, 16))
	require.NoError(t, f.AddArc(0, 2, 13))
	require.NoError(t, f.AddArc(1, 2, 10))
	require.NoError(t, f.AddArc(2, 1, 4))
	require.NoError(t, f.AddArc(1, 3, 12))
	require.NoError(t, f.AddArc(3, 2, 9))
	require.NoError(t, f.AddArc(2, 4, 14))
	require.NoError(t, f.AddArc(4, 3, 7))
	require.NoError(t, f.AddArc(3, 5, 20))
	require.NoError(t, f.AddArc(4, 5, 4))

	got, err := f.MaxFlow(0, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(23), got)
}

// TestMaxFlow_ParallelPaths sums independent path capacities.
func TestMaxFlow_ParallelPaths(t *testing.T) {
	f := flow.NewNetwork(4)
	require.NoError(t, f.AddArc(0, 1, 3))
	require.NoError(t, f.AddArc(1, 3, 3))
	require.NoError(t, f.AddArc(0, 2, 5))
	require.NoError(t, f.AddArc(2, 3, 4))

	got, err := f.MaxFlow(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

// TestMaxFlow_Bottleneck: the middle arc caps everything.
func TestMaxFlow_Bottleneck(t *testing.T) {
	f := flow.NewNetwork(4)
	require.NoError(t, f.AddArc(0, 1, 100))
	require.NoError(t, f.AddArc(1, 2, 1))
	require.NoError(t, f.AddArc(2, 3, 100))

	got, err := f.MaxFlow(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

// TestMaxFlow_NoPath is zero when the sink is unreachable.
func TestMaxFlow_NoPath(t *testing.T) {
	f := flow.NewNetwork(3)
	require.NoError(t, f.AddArc(0, 1, 5))

	got, err := f.MaxFlow(0, 2)
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestMaxFlow_ReverseArcsAbsorbFlow requires rerouting through a reverse
// arc to reach the optimum.
func TestMaxFlow_ReverseArcsAbsorbFlow(t *testing.T) {
	// Two crossed diamonds: the greedy first path 0→1→2→3 must later
	// give back its middle arc.
	f := flow.NewNetwork(4)
	require.NoError(t, f.AddArc(0, 1, 1))
	require.NoError(t, f.AddArc(0, 2, 1))
	require.NoError(t, f.AddArc(1, 2, 1))
	require.NoError(t, f.AddArc(1, 3, 1))
	require.NoError(t, f.AddArc(2, 3, 1))

	got, err := f.MaxFlow(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

// TestAddArc_ImplicitReverse verifies the arena pairing: each AddArc
// appends a forward arc and a zero-capacity reverse arc whose Rev
// indexes point at each other.
func TestAddArc_ImplicitReverse(t *testing.T) {
	f := flow.NewNetwork(2)
	require.NoError(t, f.AddArc(0, 1, 9))

	fwd := f.Arcs(0)
	rev := f.Arcs(1)
	require.Len(t, fwd, 1)
	require.Len(t, rev, 1)
	assert.Equal(t, int64(9), fwd[0].Cap)
	assert.Zero(t, rev[0].Cap)
	assert.Equal(t, 0, fwd[0].Rev)
	assert.Equal(t, 0, rev[0].Rev)
	assert.Equal(t, 1, fwd[0].To)
	assert.Equal(t, 0, rev[0].To)
}

// TestResiduals_AfterMaxFlow: saturated forward arcs hit zero and their
// reverse arcs hold the shipped flow.
func TestResiduals_AfterMaxFlow(t *testing.T) {
	f := flow.NewNetwork(3)
	require.NoError(t, f.AddArc(0, 1, 4))
	require.NoError(t, f.AddArc(1, 2, 4))

	got, err := f.MaxFlow(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), got)

	assert.Zero(t, f.Arcs(0)[0].Cap)
	assert.Equal(t, int64(4), f.Arcs(1)[0].Cap) // reverse arc 1→0
}

// TestValidation covers endpoint, capacity, and s==t errors.
func TestValidation(t *testing.T) {
	f := flow.NewNetwork(2)

	assert.ErrorIs(t, f.AddArc(0, 5, 1), flow.ErrVertexOutOfRange)
	assert.ErrorIs(t, f.AddArc(-1, 1, 1), flow.ErrVertexOutOfRange)
	assert.ErrorIs(t, f.AddArc(0, 1, -4), flow.ErrNegativeCapacity)

	_, err := f.MaxFlow(0, 0)
	assert.ErrorIs(t, err, flow.ErrSameSourceSink)
	_, err = f.MaxFlow(0, 7)
	assert.ErrorIs(t, err, flow.ErrVertexOutOfRange)
}
