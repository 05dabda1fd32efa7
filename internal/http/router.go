package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/metrics"
	"github.com/guttosm/load-planner/internal/middleware"
	"github.com/guttosm/load-planner/internal/service"
)

// exportPath serves a zip-based workbook, which gzip cannot shrink.
const exportPath = "/api/plan/export"

// RouterConfig holds router configuration options.
// The router does not own RateLimiter or IdempotencyCache; the caller stops them.
type RouterConfig struct {
	// RateLimiter limits /api requests per client; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	// IdempotencyCache enables Idempotency-Key replay on /api; nil disables it.
	IdempotencyCache *middleware.IdempotencyCache
	// APIKeys maps accepted API keys to client IDs.
	APIKeys        map[string]string
	EnableAuth     bool
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	LoggingService service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router of the load planner.
// catalogHandler may be nil, in which case the catalog endpoints are not registered.
func NewRouter(handler *Handler, catalogHandler *CatalogHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{}
	if handler != nil {
		groups = append(groups, NewPlanRoutes(handler))
	}
	if catalogHandler != nil {
		groups = append(groups, NewCatalogRoutes(catalogHandler))
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics", exportPath),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Authentication
// runs before rate limiting and idempotency so both can key on the client.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
	if cfg.IdempotencyCache != nil {
		api.Use(middleware.Idempotency(cfg.IdempotencyCache))
	}
}
