package repository

import (
	"context"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// VehicleCatalogRepositoryInterface defines the vehicle catalog store operations.
type VehicleCatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*VehicleCatalogConfig, error)
	Create(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*VehicleCatalogConfig, error)
	List(ctx context.Context, limit int) ([]VehicleCatalogConfig, error)
}

// LogsRepositoryInterface defines the logs store operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
