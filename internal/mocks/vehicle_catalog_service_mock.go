// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/repository"
)

type MockVehicleCatalogService struct {
	mock.Mock
}

func (m *MockVehicleCatalogService) Active(ctx context.Context) (*repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VehicleCatalogConfig), args.Error(1)
}

func (m *MockVehicleCatalogService) Update(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx, classes, createdBy, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VehicleCatalogConfig), args.Error(1)
}

func (m *MockVehicleCatalogService) History(ctx context.Context, limit int) ([]repository.VehicleCatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VehicleCatalogConfig), args.Error(1)
}

func (m *MockVehicleCatalogService) Sync(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
