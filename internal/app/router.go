package app

import (
	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/http"
	"github.com/guttosm/load-planner/internal/middleware"
	"github.com/guttosm/load-planner/internal/service"
)

// RouterComponents holds the HTTP handlers and router configuration.
type RouterComponents struct {
	Handler        *http.Handler
	CatalogHandler *http.CatalogHandler
	HealthHandler  *http.HealthHandler
	Config         http.RouterConfig
}

// InitializeRouter creates the handlers and the router configuration.
// dbComponents may be nil, in which case catalog endpoints and audit logs are disabled.
func InitializeRouter(planner service.LoadPlanner, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	var catalogHandler *http.CatalogHandler
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		catalogs := service.NewVehicleCatalogService(dbComponents.CatalogRepo, planner)
		syncCatalog(catalogs)
		catalogHandler = http.NewCatalogHandler(catalogs, planner, loggingService)

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(dbComponents.LogsCircuitBreaker)
		}
	}

	handler := http.NewHandler(planner,
		http.WithLimits(dto.Limits{MaxItems: cfg.Planner.MaxItems, MaxUnits: cfg.Planner.MaxUnits}),
		http.WithAuditLogging(loggingService),
	)

	routerCfg := http.DefaultRouterConfig()
	routerCfg.IdempotencyCache = middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL)
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.LoggingService = loggingService

	return &RouterComponents{
		Handler:        handler,
		CatalogHandler: catalogHandler,
		HealthHandler:  healthHandler,
		Config:         routerCfg,
	}
}
