package service

import (
	"context"

	"github.com/MKhiriev/order-service/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ItemService resolves catalog items referenced by order positions.
type ItemService interface {
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
}

// UserService looks up order owners in the external user service.
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, request models.OrderRequest) (models.OrderResponse, error)

	GetOrderByID(ctx context.Context, id int64) (models.OrderResponse, error)
	GetOrdersByIDs(ctx context.Context, ids []int64) ([]models.OrderResponse, error)
	GetOrdersByStatus(ctx context.Context, status models.Status) ([]models.OrderResponse, error)

	UpdateOrderByID(ctx context.Context, request models.UpdateOrderRequest, id int64) (models.OrderResponse, error)
	DeleteOrderByID(ctx context.Context, id int64) error

	// AddUserInfoToOrderResponse attaches the owner of the order. Lookup
	// failures leave the response unchanged.
	AddUserInfoToOrderResponse(ctx context.Context, response models.OrderResponse) models.OrderResponse
}

// OrderServiceWrapper defines middleware composition for OrderService.
// Implementations wrap an existing OrderService to add behavior such as
// logging or validating.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService // returns a decorated OrderService applying additional behavior
}
