// Package cache defines the plan cache contract used by the load planner service.
package cache

import "github.com/guttosm/load-planner/internal/domain/model"

// Cache stores plan results keyed by an inventory fingerprint.
type Cache interface {
	Get(key string) (model.PlanResult, bool)
	Set(key string, value model.PlanResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
