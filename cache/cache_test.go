package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUAddGet(t *testing.T) {
	t.Parallel()

	c := NewLRU[[]string](4)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Add("a", []string{"alpha", "apple"})
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "apple"}, got)
	assert.Equal(t, 1, c.Len())
}

func TestLRUEvictsOldest(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")

	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRURecencyOrder(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](2)
	c.Add("a", 1)
	c.Add("b", 2)

	// Touching "a" makes "b" the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Add("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestLRUPurge(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](8)
	for i := 0; i < 5; i++ {
		c.Add(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 5, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get("k0")
	assert.False(t, ok)
}

func TestLRUStats(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](2)
	c.Add("a", 1)

	_, _ = c.Get("a")       // hit
	_, _ = c.Get("a")       // hit
	_, _ = c.Get("missing") // miss

	c.Add("b", 2)
	c.Add("c", 3) // evicts one

	stats := c.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Evictions)
	assert.Equal(t, 2, stats.MaxSize)
	assert.Equal(t, 2, stats.Size)
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 1e-9)
}

func TestLRUDefaultSize(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0)
	assert.Equal(t, DefaultSize, c.Stats().MaxSize)
}

func TestNullNeverStores(t *testing.T) {
	t.Parallel()

	n := NewNull[[]int]()
	n.Add("a", []int{1, 2, 3})

	got, ok := n.Get("a")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, n.Len())

	n.Purge() // no-op, must not panic
}

func TestStoreImplementations(t *testing.T) {
	t.Parallel()

	var _ Store[[]string] = NewLRU[[]string](4)
	var _ Store[[]string] = NewNull[[]string]()
}
