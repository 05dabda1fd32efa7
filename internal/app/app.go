// Package app wires configuration, storage, services and HTTP into a runnable application.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/http"
	"github.com/guttosm/load-planner/internal/middleware"
)

const closeTimeout = 5 * time.Second

// Application is the wired load planner. Close releases its background workers
// and the database connection.
type Application struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg.Cache)
	database := InitializeDatabase(cfg.Database)
	if database != nil {
		middleware.InitAsyncLogger(database.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}
	components := InitializeRouter(services.Planner, database, cfg)

	return &Application{
		Router:   http.NewRouter(components.Handler, components.CatalogHandler, components.HealthHandler, components.Config),
		services: services,
		database: database,
		router:   components,
	}
}

// Close flushes pending audit logs, then stops every background worker and
// disconnects from MongoDB.
func (a *Application) Close() {
	middleware.StopAsyncLogger()

	if rl := a.router.Config.RateLimiter; rl != nil {
		rl.Stop()
	}
	if ic := a.router.Config.IdempotencyCache; ic != nil {
		ic.Stop()
	}
	a.services.Planner.Stop()

	if a.database != nil && a.database.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := a.database.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
