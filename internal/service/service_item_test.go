package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/mock"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemService_GetItemByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, logger.Nop())

	want := models.Item{ID: 3, Name: "Headphones", Price: decimal.RequireFromString("149.00")}
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(want, nil)

	got, err := svc.GetItemByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_GetItemByID_NonPositiveID_SkipsRepository(t *testing.T) {
	for _, id := range []int64{0, -1} {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		svc := NewItemService(repo, logger.Nop())

		_, err := svc.GetItemByID(context.Background(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrItemNotFound)
	}
}

func TestItemService_GetItemByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, logger.Nop())

	repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.GetItemByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.EqualError(t, err, "Item not found: 42")
}

func TestItemService_GetItemByID_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, logger.Nop())

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Item{}, dbErr)

	_, err := svc.GetItemByID(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}
