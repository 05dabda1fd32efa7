//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/mocks"
	"github.com/guttosm/load-planner/internal/repository"
)

func vansOnly() []model.VehicleClass {
	return model.DefaultVehicleCatalog()[:2]
}

func TestVehicleCatalogService_NoRepository(t *testing.T) {
	ctx := context.Background()
	svc := NewVehicleCatalogService(nil, nil)

	_, err := svc.Active(ctx)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.Update(ctx, vansOnly(), "", "")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.History(ctx, 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	assert.ErrorIs(t, svc.Sync(ctx), ErrRepositoryNotConfigured)
}

func TestVehicleCatalogService_Update(t *testing.T) {
	ctx := context.Background()
	stored := &repository.VehicleCatalogConfig{Version: 4, Active: true, Classes: vansOnly()}

	repo := new(mocks.MockVehicleCatalogRepository)
	repo.On("Create", ctx, vansOnly(), "client-a", "winter").Return(stored, nil)

	planner := NewLoadPlannerService()
	svc := NewVehicleCatalogService(repo, planner)

	cfg, err := svc.Update(ctx, vansOnly(), "client-a", "winter")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Version)
	assert.Equal(t, vansOnly(), planner.Catalog())
}

func TestVehicleCatalogService_UpdateError(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockVehicleCatalogRepository)
	repo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

	planner := NewLoadPlannerService()
	_, err := NewVehicleCatalogService(repo, planner).Update(ctx, vansOnly(), "", "")

	assert.Error(t, err)
	assert.Equal(t, model.DefaultVehicleCatalog(), planner.Catalog())
}

func TestVehicleCatalogService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("loads active catalog", func(t *testing.T) {
		repo := new(mocks.MockVehicleCatalogRepository)
		repo.On("GetActive", ctx).Return(&repository.VehicleCatalogConfig{Version: 2, Classes: vansOnly()}, nil)

		planner := NewLoadPlannerService()
		require.NoError(t, NewVehicleCatalogService(repo, planner).Sync(ctx))

		assert.Equal(t, vansOnly(), planner.Catalog())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("seeds default when empty", func(t *testing.T) {
		repo := new(mocks.MockVehicleCatalogRepository)
		repo.On("GetActive", ctx).Return(nil, nil)
		repo.On("Create", ctx, model.DefaultVehicleCatalog(), seedCreatedBy, "default catalog").
			Return(&repository.VehicleCatalogConfig{Version: 1, Classes: model.DefaultVehicleCatalog()}, nil)

		planner := NewLoadPlannerService(WithCatalog(vansOnly()))
		require.NoError(t, NewVehicleCatalogService(repo, planner).Sync(ctx))

		assert.Equal(t, model.DefaultVehicleCatalog(), planner.Catalog())
		repo.AssertExpectations(t)
	})

	t.Run("read error", func(t *testing.T) {
		repo := new(mocks.MockVehicleCatalogRepository)
		repo.On("GetActive", ctx).Return(nil, errors.New("timeout"))

		assert.Error(t, NewVehicleCatalogService(repo, nil).Sync(ctx))
	})

	t.Run("open circuit keeps current catalog", func(t *testing.T) {
		repo := new(mocks.MockVehicleCatalogRepository)
		repo.On("GetActive", ctx).Return(nil, errors.New("down")).Once()

		cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "catalog"})
		wrapped := repository.NewVehicleCatalogRepositoryWithCircuitBreaker(repo, cb)

		planner := NewLoadPlannerService(WithCatalog(vansOnly()))
		svc := NewVehicleCatalogService(wrapped, planner)

		assert.Error(t, svc.Sync(ctx))
		assert.ErrorIs(t, svc.Sync(ctx), circuitbreaker.ErrCircuitOpen)
		assert.Equal(t, vansOnly(), planner.Catalog())
	})
}

func TestVehicleCatalogService_History(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockVehicleCatalogRepository)
	repo.On("List", ctx, 20).Return([]repository.VehicleCatalogConfig{{Version: 2}, {Version: 1}}, nil)

	list, err := NewVehicleCatalogService(repo, nil).History(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
