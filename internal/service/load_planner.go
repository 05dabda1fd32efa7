package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/metrics"
	"github.com/guttosm/load-planner/internal/planner"
	"github.com/guttosm/load-planner/internal/service/cache"
)

// LoadPlanner defines the load planning operations exposed to the HTTP layer.
type LoadPlanner interface {
	// Plan packs the inventory using the given catalog, or the active one when empty.
	Plan(items []model.InventoryItem, catalog []model.VehicleClass) model.PlanResult
	// PlanRooms merges the rooms, guesses unnamed rooms and plans the merged inventory.
	PlanRooms(rooms []model.Room, catalog []model.VehicleClass) model.RoomsPlanResult
	Aggregate(sources [][]model.InventoryItem) []model.InventoryItem
	InferRoom(items []model.InventoryItem) (string, bool)
	// Catalog returns a copy of the active vehicle catalog.
	Catalog() []model.VehicleClass
	// SetCatalog replaces the active catalog and drops cached plans.
	SetCatalog(catalog []model.VehicleClass)
	// InvalidateCache clears the plan cache.
	InvalidateCache()
}

// Option configures a LoadPlannerService.
type Option func(*LoadPlannerService)

// LoadPlannerService implements LoadPlanner on top of the planner package.
// Results are optionally cached by request fingerprint and concurrent identical
// requests are computed once.
type LoadPlannerService struct {
	mu      sync.RWMutex
	catalog []model.VehicleClass
	cache   cache.Cache
	flight  singleflight.Group
}

// NewLoadPlannerService creates a LoadPlannerService with the given options.
func NewLoadPlannerService(opts ...Option) *LoadPlannerService {
	s := &LoadPlannerService{
		catalog: model.DefaultVehicleCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCatalog sets the starting vehicle catalog. An empty catalog is ignored.
func WithCatalog(catalog []model.VehicleClass) Option {
	return func(s *LoadPlannerService) {
		if len(catalog) > 0 {
			s.catalog = cloneCatalog(catalog)
		}
	}
}

// WithCache enables a sharded plan cache with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *LoadPlannerService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, defaultShards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *LoadPlannerService) {
		s.cache = c
	}
}

func cloneCatalog(catalog []model.VehicleClass) []model.VehicleClass {
	out := make([]model.VehicleClass, len(catalog))
	copy(out, catalog)
	return out
}

// Catalog returns a copy of the catalog used when a request brings none.
func (s *LoadPlannerService) Catalog() []model.VehicleClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCatalog(s.catalog)
}

// SetCatalog replaces the default catalog and clears cached plans. An empty catalog is ignored.
func (s *LoadPlannerService) SetCatalog(catalog []model.VehicleClass) {
	if len(catalog) == 0 {
		return
	}
	s.mu.Lock()
	s.catalog = cloneCatalog(catalog)
	s.mu.Unlock()

	s.InvalidateCache()
	log.Info().Int("classes", len(catalog)).Msg("Vehicle catalog updated")
}

// Plan returns the load plan for the inventory. The returned value may be shared
// with other callers through the cache and must not be modified.
func (s *LoadPlannerService) Plan(items []model.InventoryItem, catalog []model.VehicleClass) model.PlanResult {
	if len(items) == 0 {
		return model.Empty()
	}
	if len(catalog) == 0 {
		catalog = s.Catalog()
	}

	key := Fingerprint(items, catalog)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.PlansTotal.WithLabelValues("cached").Inc()
			return result
		}
	}

	v, _, _ := s.flight.Do(key, func() (interface{}, error) {
		result := s.compute(items, catalog)
		if s.cache != nil {
			s.cache.Set(key, result)
		}
		return result, nil
	})
	result, _ := v.(model.PlanResult)
	return result
}

func (s *LoadPlannerService) compute(items []model.InventoryItem, catalog []model.VehicleClass) model.PlanResult {
	start := time.Now()
	result := planner.PlanWithSummary(items, catalog)

	status := "computed"
	for _, v := range result.Vehicles {
		if v.OverCapacity {
			status = "over_capacity"
			log.Warn().
				Str("vehicle_class", v.VehicleClass.ID).
				Float64("volume_m3", v.TotalVolumeM3).
				Float64("mass_kg", v.TotalMassKg).
				Msg("Unit exceeds every vehicle class, placed in largest class")
		}
	}

	metrics.RecordPlan(time.Since(start), status, result.Summary.VehicleCount, result.Summary.TotalItems)
	return result
}

// PlanRooms merges the items of every room and plans the merged inventory.
func (s *LoadPlannerService) PlanRooms(rooms []model.Room, catalog []model.VehicleClass) model.RoomsPlanResult {
	summaries := make([]model.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		summary := model.RoomSummary{Name: r.Name, ItemCount: len(r.Items)}
		if guess, ok := planner.InferRoomName(r.Items); ok {
			summary.InferredName = guess
		}
		summaries = append(summaries, summary)
	}

	items := planner.AggregateRooms(rooms)
	return model.RoomsPlanResult{
		Rooms: summaries,
		Items: items,
		Plan:  s.Plan(items, catalog),
	}
}

// Aggregate merges item lists by name.
func (s *LoadPlannerService) Aggregate(sources [][]model.InventoryItem) []model.InventoryItem {
	return planner.Aggregate(sources)
}

// InferRoom guesses the room the items come from.
func (s *LoadPlannerService) InferRoom(items []model.InventoryItem) (string, bool) {
	return planner.InferRoomName(items)
}

// InvalidateCache drops every cached plan.
func (s *LoadPlannerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheMetrics returns the cache metrics when the cache reports them.
func (s *LoadPlannerService) CacheMetrics() (cache.Metrics, bool) {
	if m, ok := s.cache.(cache.CacheWithMetrics); ok {
		return m.Metrics(), true
	}
	return cache.Metrics{}, false
}

// Stop releases the cache's background resources.
func (s *LoadPlannerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
