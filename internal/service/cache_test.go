package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/service/cache"
)

func resultWithItems(n int) model.PlanResult {
	r := model.Empty()
	r.Summary.TotalItems = n
	return r
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           string
		expectedValue model.PlanResult
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("a", resultWithItems(4))
				return c
			},
			key:           "a",
			expectedValue: resultWithItems(4),
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 20*time.Millisecond)
				c.Set("a", resultWithItems(1))
				time.Sleep(50 * time.Millisecond)
				return c
			},
			key:           "a",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()

			value, found := c.Get(tt.key)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newTTLCache(3, time.Minute)
	defer c.Stop()

	c.Set("1", resultWithItems(1))
	c.Set("2", resultWithItems(2))
	c.Set("3", resultWithItems(3))

	// touching 1 leaves 2 as the oldest entry
	c.Get("1")
	c.Set("4", resultWithItems(4))

	_, ok1 := c.Get("1")
	_, ok2 := c.Get("2")
	_, ok3 := c.Get("3")
	_, ok4 := c.Get("4")

	assert.True(t, ok1)
	assert.False(t, ok2, "least recently used entry is evicted")
	assert.True(t, ok3)
	assert.True(t, ok4)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_UpdateExistingEntry(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", resultWithItems(1))
	c.Set("a", resultWithItems(2))

	value, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, 2, value.Summary.TotalItems)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", resultWithItems(1))
	c.Set("b", resultWithItems(2))
	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_RemoveExpired(t *testing.T) {
	c := newTTLCache(10, 20*time.Millisecond)
	defer c.Stop()

	c.Set("a", resultWithItems(1))
	c.Set("b", resultWithItems(2))
	time.Sleep(50 * time.Millisecond)

	// below the 80% fill threshold nothing is swept unless forced
	c.removeExpired(false)
	assert.Equal(t, 2, c.Metrics().Size)

	c.removeExpired(true)
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", resultWithItems(1))
	c.Get("a")
	c.Get("b")

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

func TestTTLCache_StopIsIdempotent(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_ImplementsInterface(t *testing.T) {
	var _ cache.Cache = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ShardedCache)(nil)
}

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"default shards when zero", 0, 16},
		{"default shards when negative", -1, 16},
		{"rounds up to power of 2", 3, 4},
		{"exact power of 2", 8, 8},
		{"rounds 5 to 8", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewShardedCache(100, time.Minute, tt.numShards)
			defer sc.Stop()

			assert.Len(t, sc.shards, tt.wantShards)
			assert.Equal(t, uint64(tt.wantShards-1), sc.shardMask)
		})
	}
}

func TestShardedCache_RoutesKeysConsistently(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("plan-%d", i)
		sc.Set(key, resultWithItems(i))
		assert.Same(t, sc.shard(key), sc.shard(key))
	}

	for i := 0; i < 20; i++ {
		v, ok := sc.Get(fmt.Sprintf("plan-%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v.Summary.TotalItems)
	}

	m := sc.Metrics()
	assert.Equal(t, 20, m.Size)
	assert.Equal(t, 64, m.Capacity)

	sc.Invalidate("plan-0")
	_, ok := sc.Get("plan-0")
	assert.False(t, ok)

	sc.Clear()
	assert.Equal(t, 0, sc.Metrics().Size)
}

func TestShardedCache_Concurrency(t *testing.T) {
	sc := NewShardedCache(1000, time.Minute, 8)
	defer sc.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("%d-%d", g, j)
				sc.Set(key, resultWithItems(j))
				sc.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.Greater(t, sc.Metrics().Size, 0)
}
