//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *Storages {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("orders"),
		postgres.WithUsername("orders"),
		postgres.WithPassword("orders"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestOrderRepository_Integration(t *testing.T) {
	storages := startPostgres(t)
	repo := storages.OrderRepository
	ctx := context.Background()

	laptop, err := storages.ItemRepository.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", laptop.Name)

	saved, err := repo.Save(ctx, models.Order{
		UserID: 1,
		Status: models.StatusSuccess,
		OrderItems: []models.OrderItem{
			{Item: laptop, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Len(t, saved.OrderItems, 1)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, found.Status)
	require.Len(t, found.OrderItems, 1)
	assert.True(t, laptop.Price.Equal(found.OrderItems[0].Item.Price))

	found.Status = models.StatusCancelled
	found.OrderItems = []models.OrderItem{{Item: models.Item{ID: 2}, Quantity: 1}, {Item: models.Item{ID: 3}, Quantity: 4}}
	updated, err := repo.Save(ctx, found)
	require.NoError(t, err)
	assert.Len(t, updated.OrderItems, 2)

	byStatus, err := repo.FindByStatus(ctx, models.StatusCancelled)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Len(t, byStatus[0].OrderItems, 2)

	_, err = repo.Save(ctx, models.Order{
		UserID:     1,
		Status:     models.StatusSuccess,
		OrderItems: []models.OrderItem{{Item: models.Item{ID: 999}, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrIntegrityViolation)

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	assert.ErrorIs(t, repo.DeleteByID(ctx, saved.ID), ErrOrderNotFound)

	all, err := repo.FindAllByIDs(ctx, []int64{saved.ID})
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.DeleteAll(ctx))
}
