//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/circuitbreaker"
	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/repository"
	"github.com/guttosm/load-planner/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	db, err := repository.NewMongoDB(mongoContainer.URI, "test_load_planner_cb")
	require.NoError(t, err)

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test-vehicle-catalog",
	})
	repo := repository.NewVehicleCatalogRepositoryWithCircuitBreaker(repository.NewVehicleCatalogRepository(db), cb)

	_, err = repo.Create(ctx, model.DefaultVehicleCatalog(), "test", "")
	require.NoError(t, err)

	// Closing the client makes every call fail.
	require.NoError(t, db.Close(ctx))

	for i := 0; i < 2; i++ {
		_, err = repo.List(ctx, 1)
		assert.Error(t, err)
	}
	assert.True(t, cb.IsOpen())

	active, err := repo.GetActive(ctx)
	assert.NoError(t, err)
	assert.Nil(t, active)

	_, err = repo.List(ctx, 1)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
