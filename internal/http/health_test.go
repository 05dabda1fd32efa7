//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
)

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func probe(t *testing.T, h *HealthHandler, path string) (int, readinessBody) {
	t.Helper()
	router := gin.New()
	h.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body readinessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthHandler_Liveness(t *testing.T) {
	code, body := probe(t, NewHealthHandler(), "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{Name: "mongodb-vehicle-catalog", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name       string
		setup      func(h *HealthHandler)
		wantStatus int
		wantLabel  string
		wantChecks []string
	}{
		{
			name:       "no dependencies",
			setup:      func(*HealthHandler) {},
			wantStatus: http.StatusOK,
			wantLabel:  "ok",
			wantChecks: []string{"service"},
		},
		{
			name: "healthy database",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
			},
			wantStatus: http.StatusOK,
			wantLabel:  "ok",
			wantChecks: []string{"mongodb"},
		},
		{
			name: "failing database",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return errors.New("no reachable servers") }))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantLabel:  "unavailable",
			wantChecks: []string{"mongodb"},
		},
		{
			name: "open circuit degrades without failing",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker(openBreaker())
			},
			wantStatus: http.StatusOK,
			wantLabel:  "degraded",
			wantChecks: []string{"mongodb", "circuit_breakers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)

			code, body := probe(t, h, "/readyz")

			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantLabel, body.Status)
			for _, name := range tt.wantChecks {
				assert.Contains(t, body.Checks, name)
			}
		})
	}
}

func TestHealthHandler_ReadinessReportsError(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return errors.New("no reachable servers") }))

	_, body := probe(t, h, "/readyz")
	assert.Equal(t, "no reachable servers", body.Checks["mongodb"])
}
