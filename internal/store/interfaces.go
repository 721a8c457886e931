package store

import (
	"context"

	"github.com/MKhiriev/order-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OrderRepository persists orders together with their order items.
type OrderRepository interface {
	// Save inserts the order when ID is zero and updates it otherwise.
	// Order items are replaced as a whole within the same transaction.
	Save(ctx context.Context, order models.Order) (models.Order, error)
	FindByID(ctx context.Context, id int64) (models.Order, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.Status) ([]models.Order, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// ItemRepository reads the item catalog.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (models.Item, error)
}

// UserCache keeps users fetched from the user service.
type UserCache interface {
	// Get reports false without an error on a cache miss.
	Get(ctx context.Context, id int64) (models.User, bool, error)
	Set(ctx context.Context, user models.User) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
