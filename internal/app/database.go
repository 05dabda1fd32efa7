package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/repository"
	"github.com/guttosm/load-planner/internal/service"
)

const catalogSyncTimeout = 5 * time.Second

// DatabaseComponents holds the MongoDB connection and the services built on it.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	CatalogRepo           repository.VehicleCatalogRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories behind circuit breakers.
// It returns nil when the database is disabled or unreachable; the service then runs
// on the in-memory catalog without audit logs.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	catalogCB := newCircuitBreaker(cfg, "mongodb-vehicle-catalog")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	catalogRepo := repository.NewVehicleCatalogRepositoryWithCircuitBreaker(repository.NewVehicleCatalogRepository(db), catalogCB)

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           catalogRepo,
		LoggingService:        service.NewLoggingService(logsRepo),
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// syncCatalog loads the active catalog into the planner, seeding the default one
// on first start. Failures are logged and the planner keeps its current catalog.
func syncCatalog(catalogs service.VehicleCatalogService) {
	ctx, cancel := context.WithTimeout(context.Background(), catalogSyncTimeout)
	defer cancel()

	if err := catalogs.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to sync vehicle catalog - using built-in catalog")
	}
}
