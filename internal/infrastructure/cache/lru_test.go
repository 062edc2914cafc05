package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recent
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")

	val, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, val)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_SetReplacesValue(t *testing.T) {
	c := NewLRU[string, string](2)

	c.Set("pane", "old")
	c.Set("pane", "new")

	val, ok := c.Get("pane")
	require.True(t, ok)
	assert.Equal(t, "new", val)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}

	c.Remove(1)
	c.Remove(42)
	assert.Equal(t, 3, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get(0)
	assert.False(t, ok)
}

func TestLRU_CapacityBelowOne(t *testing.T) {
	c := NewLRU[string, int](0)

	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)

	c.Get("a")
	c.Get("a")
	c.Get("missing")

	assert.Equal(t, Stats{Len: 1, Hits: 2, Misses: 1}, c.Stats())

	c.Clear()
	assert.Equal(t, Stats{Hits: 2, Misses: 1}, c.Stats(), "clear keeps counters")
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](64)
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Set(i, i)
		}()
		go func() {
			defer wg.Done()
			c.Get(i)
		}()
		go func() {
			defer wg.Done()
			c.Remove(i - 10)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}
