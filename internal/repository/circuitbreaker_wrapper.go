package repository

import (
	"context"
	"errors"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/domain/model"
)

// VehicleCatalogRepositoryWithCircuitBreaker guards catalog access with a circuit breaker.
type VehicleCatalogRepositoryWithCircuitBreaker struct {
	repo           VehicleCatalogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewVehicleCatalogRepositoryWithCircuitBreaker wraps repo with cb.
func NewVehicleCatalogRepositoryWithCircuitBreaker(repo VehicleCatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *VehicleCatalogRepositoryWithCircuitBreaker {
	return &VehicleCatalogRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns nil without error while the circuit is open, so callers fall
// back to the catalog they already hold.
func (r *VehicleCatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*VehicleCatalogConfig, error) {
	var result *VehicleCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

func (r *VehicleCatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*VehicleCatalogConfig, error) {
	var result *VehicleCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, classes, createdBy, note)
		return cbErr
	})
	return result, err
}

func (r *VehicleCatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]VehicleCatalogConfig, error) {
	var result []VehicleCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// CircuitBreaker returns the breaker for health reporting.
func (r *VehicleCatalogRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards log writes and reads with a circuit breaker.
// Writes are dropped silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// CircuitBreaker returns the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
