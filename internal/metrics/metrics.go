// Package metrics provides Prometheus metrics collection for the load planner.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PlansTotal counts planning runs by outcome (computed, cached, over_capacity).
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_plans_total",
			Help: "Total number of load plans produced",
		},
		[]string{"status"},
	)

	// PlanDuration tracks how long a planning run takes.
	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "load_plan_duration_seconds",
			Help:    "Load planning duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		},
	)

	// PlanVehicles observes how many vehicles each plan needs.
	PlanVehicles = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "load_plan_vehicles",
			Help:    "Number of vehicles per load plan",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 20},
		},
	)

	// PlanUnits observes how many physical units each plan places.
	PlanUnits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "load_plan_units",
			Help:    "Number of physical units per load plan",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// ExportsTotal counts crew-sheet exports by result.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "load_plan_exports_total",
			Help: "Total number of load plan workbook exports",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CircuitBreakerState reports each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// AuditLogEntriesTotal counts log entries handed to the async logger by outcome.
	AuditLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Log entries processed by the async logger (written, dropped, failed)",
		},
		[]string{"result"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPlan records the duration and outcome of a planning run.
func RecordPlan(duration time.Duration, status string, vehicles, units int) {
	PlanDuration.Observe(duration.Seconds())
	PlansTotal.WithLabelValues(status).Inc()
	PlanVehicles.Observe(float64(vehicles))
	PlanUnits.Observe(float64(units))
}

// RecordExport records a workbook export.
func RecordExport(result string) {
	ExportsTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogEntries adds n entries with the given outcome.
func RecordAuditLogEntries(result string, n int) {
	AuditLogEntriesTotal.WithLabelValues(result).Add(float64(n))
}
