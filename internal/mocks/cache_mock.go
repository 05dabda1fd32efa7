// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/load-planner/internal/domain/model"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string) (model.PlanResult, bool) {
	args := m.Called(key)
	return args.Get(0).(model.PlanResult), args.Bool(1)
}

func (m *MockCache) Set(key string, value model.PlanResult) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
