package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphkit-go/graphkit/unionfind"
)

// TestSingletons verifies the initial partition: every element is its own
// root and the live set count equals n.
func TestSingletons(t *testing.T) {
	u := unionfind.New(5)
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, 5, u.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, u.Find(i))
	}
}

// TestUnion_MergeAndRepeat verifies that a first union reports a merge
// and equalizes roots; repeating it reports false.
func TestUnion_MergeAndRepeat(t *testing.T) {
	u := unionfind.New(4)

	assert.True(t, u.Union(0, 1))
	assert.Equal(t, u.Find(0), u.Find(1))
	assert.False(t, u.Union(0, 1))
	assert.False(t, u.Union(1, 0))
	assert.Equal(t, 3, u.Count())
}

// TestTransitiveConnectivity verifies chained unions collapse into one set.
func TestTransitiveConnectivity(t *testing.T) {
	u := unionfind.New(6)
	assert.True(t, u.Union(0, 1))
	assert.True(t, u.Union(2, 3))
	assert.True(t, u.Union(1, 3))

	assert.True(t, u.Connected(0, 2))
	assert.True(t, u.Connected(1, 2))
	assert.False(t, u.Connected(0, 4))
	assert.Equal(t, 3, u.Count())
}

// TestPathCompression_ManyElements exercises a long chain; all elements
// must end up sharing one root and Find must stay consistent throughout.
func TestPathCompression_ManyElements(t *testing.T) {
	const n = 1000
	u := unionfind.New(n)
	for i := 1; i < n; i++ {
		assert.True(t, u.Union(i-1, i))
	}
	root := u.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, u.Find(i))
	}
	assert.Equal(t, 1, u.Count())
}

// TestOutOfRange verifies out-of-range elements never merge anything.
func TestOutOfRange(t *testing.T) {
	u := unionfind.New(2)
	assert.False(t, u.Union(0, 5))
	assert.False(t, u.Union(-1, 1))
	assert.Equal(t, 2, u.Count())
}
