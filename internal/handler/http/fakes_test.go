package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/service"
	"github.com/MKhiriev/order-service/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockItemService struct {
	getFn func(ctx context.Context, id int64) (models.Item, error)
}

func (m *mockItemService) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Item{ID: id}, nil
}

type mockOrderService struct {
	createFn   func(ctx context.Context, req models.OrderRequest) (models.OrderResponse, error)
	getFn      func(ctx context.Context, id int64) (models.OrderResponse, error)
	getByIDsFn func(ctx context.Context, ids []int64) ([]models.OrderResponse, error)
	statusFn   func(ctx context.Context, status models.Status) ([]models.OrderResponse, error)
	updateFn   func(ctx context.Context, req models.UpdateOrderRequest, id int64) (models.OrderResponse, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.OrderResponse{}, nil
}
func (m *mockOrderService) GetOrderByID(ctx context.Context, id int64) (models.OrderResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.OrderResponse{ID: id}, nil
}
func (m *mockOrderService) GetOrdersByIDs(ctx context.Context, ids []int64) ([]models.OrderResponse, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return []models.OrderResponse{}, nil
}
func (m *mockOrderService) GetOrdersByStatus(ctx context.Context, status models.Status) ([]models.OrderResponse, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, status)
	}
	return []models.OrderResponse{}, nil
}
func (m *mockOrderService) UpdateOrderByID(ctx context.Context, req models.UpdateOrderRequest, id int64) (models.OrderResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req, id)
	}
	return models.OrderResponse{ID: id}, nil
}
func (m *mockOrderService) DeleteOrderByID(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockOrderService) AddUserInfoToOrderResponse(_ context.Context, resp models.OrderResponse) models.OrderResponse {
	return resp
}

// newTestHandler builds a Handler over fake services with a nop logger.
func newTestHandler(t *testing.T, orders *mockOrderService, items *mockItemService) *Handler {
	t.Helper()
	if orders == nil {
		orders = &mockOrderService{}
	}
	if items == nil {
		items = &mockItemService{}
	}

	return NewHandler(&service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
		ItemService:    items,
		OrderService:   orders,
	}, config.Server{}, logger.Nop())
}
