package app

import (
	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Planner *service.LoadPlannerService
}

// InitializeServices creates the load planner, with a plan cache when cfg.Size is positive.
// The planner starts with the built-in catalog; a persisted catalog replaces it later.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.Option
	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	return &ServiceComponents{
		Planner: service.NewLoadPlannerService(opts...),
	}
}
