//go:build !integration

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/load-planner/internal/domain/model"
)

type stubCache struct {
	entries map[string]model.PlanResult
}

func (s *stubCache) Get(key string) (model.PlanResult, bool) {
	v, ok := s.entries[key]
	return v, ok
}

func (s *stubCache) Set(key string, value model.PlanResult) { s.entries[key] = value }

func (s *stubCache) Invalidate(key string) { delete(s.entries, key) }

func (s *stubCache) Clear() { s.entries = map[string]model.PlanResult{} }

func (s *stubCache) Stop() {}

func (s *stubCache) Metrics() Metrics { return Metrics{Size: len(s.entries)} }

func TestCacheWithMetricsContract(t *testing.T) {
	var c CacheWithMetrics = &stubCache{entries: map[string]model.PlanResult{}}

	_, found := c.Get("a")
	assert.False(t, found)

	c.Set("a", model.Empty())
	got, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, model.Empty(), got)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Invalidate("a")
	_, found = c.Get("a")
	assert.False(t, found)

	c.Set("b", model.Empty())
	c.Clear()
	assert.Equal(t, Metrics{}, c.Metrics())
	c.Stop()
}
