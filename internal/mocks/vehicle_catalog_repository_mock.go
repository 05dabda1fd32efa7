// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/repository"
)

type MockVehicleCatalogRepository struct {
	mock.Mock
}

func (m *MockVehicleCatalogRepository) GetActive(ctx context.Context) (*repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VehicleCatalogConfig), args.Error(1)
}

func (m *MockVehicleCatalogRepository) Create(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx, classes, createdBy, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VehicleCatalogConfig), args.Error(1)
}

func (m *MockVehicleCatalogRepository) List(ctx context.Context, limit int) ([]repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VehicleCatalogConfig), args.Error(1)
}
