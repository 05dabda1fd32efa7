//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/mocks"
	"github.com/guttosm/load-planner/internal/repository"
	"github.com/guttosm/load-planner/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
		},
		Auth:    config.AuthConfig{Enabled: true, APIKeys: map[string]string{"secret": "acme"}},
		Planner: config.PlannerConfig{MaxItems: 5, MaxUnits: 10},
	}
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	planner := service.NewLoadPlannerService()
	components := InitializeRouter(planner, nil, testConfig())
	defer components.Config.RateLimiter.Stop()
	defer components.Config.IdempotencyCache.Stop()

	assert.NotNil(t, components.Handler)
	assert.Nil(t, components.CatalogHandler)
	assert.NotNil(t, components.HealthHandler)
	assert.Nil(t, components.Config.LoggingService)
	assert.True(t, components.Config.EnableAuth)
	assert.Equal(t, "acme", components.Config.APIKeys["secret"])
	assert.Equal(t, 10*time.Second, components.Config.RequestTimeout)
}

func TestInitializeRouter_RateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 0
	cfg.Server.RequestTimeout = 0

	components := InitializeRouter(service.NewLoadPlannerService(), nil, cfg)
	defer components.Config.IdempotencyCache.Stop()

	assert.Nil(t, components.Config.RateLimiter)
	assert.Equal(t, 30*time.Second, components.Config.RequestTimeout)
}

func TestInitializeRouter_WithDatabase(t *testing.T) {
	stored := []model.VehicleClass{{
		ID: "box-truck", Name: "Box Truck", MaxVolumeM3: 28, MaxWeightKg: 5000,
		CargoWidthM: 2.3, CargoLengthM: 5.5, CargoHeightM: 2.2,
	}}
	repo := new(mocks.MockVehicleCatalogRepository)
	repo.On("GetActive", mock.Anything).Return(&repository.VehicleCatalogConfig{Version: 2, Active: true, Classes: stored}, nil)

	catalogCB := circuitbreaker.New(circuitbreaker.Config{Name: "mongodb-vehicle-catalog", FailureThreshold: 1, Timeout: time.Minute})
	db := &DatabaseComponents{
		CatalogRepo:           repo,
		LoggingService:        new(mocks.MockLoggingService),
		CatalogCircuitBreaker: catalogCB,
	}

	planner := service.NewLoadPlannerService()
	components := InitializeRouter(planner, db, testConfig())
	defer components.Config.RateLimiter.Stop()
	defer components.Config.IdempotencyCache.Stop()

	require.NotNil(t, components.CatalogHandler)
	assert.NotNil(t, components.Config.LoggingService)
	assert.Equal(t, stored, planner.Catalog(), "active catalog is synced into the planner")

	router := gin.New()
	components.HealthHandler.Register(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb-vehicle-catalog")
}

func TestInitializeApp(t *testing.T) {
	app := InitializeApp(testConfig())
	defer app.Close()

	require.NotNil(t, app.Router)

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("api requires a key", func(t *testing.T) {
		body := `{"items":[{"name":"Sofa","quantity":1,"volume_per_unit_cubic_feet":35}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "secret")
		w = httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("configured limits apply", func(t *testing.T) {
		body := `{"items":[{"name":"Chair","quantity":11,"volume_per_unit_cubic_feet":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("catalog routes are absent without a database", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vehicle-catalog", nil)
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApplication_CloseIsIdempotent(t *testing.T) {
	app := InitializeApp(testConfig())
	assert.NotPanics(t, func() {
		app.Close()
		app.Close()
	})
}
