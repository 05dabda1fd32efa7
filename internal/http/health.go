package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
)

const readinessTimeout = 3 * time.Second

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f(ctx).
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker adds a circuit breaker to the readiness probe.
func (h *HealthHandler) RegisterCircuitBreaker(cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[cb.Name()] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Checks MongoDB and the circuit breakers. An open circuit only degrades catalog storage; planning keeps working, so it is reported without failing the probe.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	degraded := false
	checks := make(map[string]interface{})

	for _, name := range sortedKeys(h.checkers) {
		if err := h.checkers[name].Check(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	breakers := make([]circuitbreaker.Stats, 0, len(h.circuitBreakers))
	for _, name := range sortedKeys(h.circuitBreakers) {
		stats := h.circuitBreakers[name].GetStats()
		if !stats.IsHealthy {
			degraded = true
		}
		breakers = append(breakers, stats)
	}
	if len(breakers) > 0 {
		checks["circuit_breakers"] = breakers
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	label := "ok"
	switch {
	case status != http.StatusOK:
		label = "unavailable"
	case degraded:
		label = "degraded"
	}

	c.JSON(status, gin.H{
		"status": label,
		"checks": checks,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
