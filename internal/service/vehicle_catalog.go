package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/repository"
)

// ErrRepositoryNotConfigured is returned when catalog storage is not available.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

const seedCreatedBy = "system"

// VehicleCatalogService manages the stored vehicle catalog and keeps the planner in sync with it.
type VehicleCatalogService interface {
	// Active returns the stored active catalog, or nil when storage is unreachable or empty.
	Active(ctx context.Context) (*repository.VehicleCatalogConfig, error)
	// Update stores classes as the new active version and hands them to the planner.
	Update(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*repository.VehicleCatalogConfig, error)
	History(ctx context.Context, limit int) ([]repository.VehicleCatalogConfig, error)
	// Sync seeds the default catalog when none is stored and loads the active one into the planner.
	Sync(ctx context.Context) error
}

// VehicleCatalogServiceImpl implements VehicleCatalogService.
type VehicleCatalogServiceImpl struct {
	repo    repository.VehicleCatalogRepositoryInterface
	planner LoadPlanner
}

// NewVehicleCatalogService creates a catalog service. planner may be nil.
func NewVehicleCatalogService(repo repository.VehicleCatalogRepositoryInterface, planner LoadPlanner) VehicleCatalogService {
	return &VehicleCatalogServiceImpl{repo: repo, planner: planner}
}

func (s *VehicleCatalogServiceImpl) Active(ctx context.Context) (*repository.VehicleCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

func (s *VehicleCatalogServiceImpl) Update(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*repository.VehicleCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	cfg, err := s.repo.Create(ctx, classes, createdBy, note)
	if err != nil {
		return nil, err
	}
	if s.planner != nil {
		s.planner.SetCatalog(cfg.Classes)
	}
	return cfg, nil
}

func (s *VehicleCatalogServiceImpl) History(ctx context.Context, limit int) ([]repository.VehicleCatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

func (s *VehicleCatalogServiceImpl) Sync(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}

	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		active, err = s.repo.Create(ctx, model.DefaultVehicleCatalog(), seedCreatedBy, "default catalog")
		if err != nil {
			return err
		}
		log.Info().Int("version", active.Version).Msg("Seeded default vehicle catalog")
	}

	if s.planner != nil {
		s.planner.SetCatalog(active.Classes)
	}
	return nil
}
