package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/order-service/internal/app"
	"github.com/MKhiriev/order-service/internal/validators"
	"github.com/MKhiriev/order-service/models"
)

// OrderValidationService rejects malformed input before it reaches the
// wrapped OrderService. Rejections are *validators.ValidationError values
// wrapped with the operation name.
type OrderValidationService struct {
	inner     OrderService
	validator validators.Validator
}

func NewOrderValidationService() OrderServiceWrapper {
	return &OrderValidationService{
		validator: validators.NewOrderValidator(),
	}
}

func (v *OrderValidationService) CreateOrder(ctx context.Context, request models.OrderRequest) (models.OrderResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.OrderResponse{}, fmt.Errorf("error during order validation before saving: %w", err)
	}

	return v.inner.CreateOrder(ctx, request)
}

func (v *OrderValidationService) GetOrderByID(ctx context.Context, id int64) (models.OrderResponse, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.OrderResponse{}, fmt.Errorf("error during order id validation: %w", err)
	}

	return v.inner.GetOrderByID(ctx, id)
}

func (v *OrderValidationService) GetOrdersByIDs(ctx context.Context, ids []int64) ([]models.OrderResponse, error) {
	if err := v.validator.Validate(ctx, ids); err != nil {
		return nil, fmt.Errorf("error during order ids validation: %w", err)
	}

	return v.inner.GetOrdersByIDs(ctx, ids)
}

func (v *OrderValidationService) GetOrdersByStatus(ctx context.Context, status models.Status) ([]models.OrderResponse, error) {
	if !status.IsValid() {
		return nil, newDomainError(ErrInvalidArgument, app.MsgUnknownStatus, status)
	}

	return v.inner.GetOrdersByStatus(ctx, status)
}

func (v *OrderValidationService) UpdateOrderByID(ctx context.Context, request models.UpdateOrderRequest, id int64) (models.OrderResponse, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.OrderResponse{}, fmt.Errorf("error during order id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.OrderResponse{}, fmt.Errorf("error during order validation before updating: %w", err)
	}

	return v.inner.UpdateOrderByID(ctx, request, id)
}

// DeleteOrderByID is passed through: the wrapped service reports a missing
// id as an invalid argument.
func (v *OrderValidationService) DeleteOrderByID(ctx context.Context, id int64) error {
	return v.inner.DeleteOrderByID(ctx, id)
}

func (v *OrderValidationService) AddUserInfoToOrderResponse(ctx context.Context, response models.OrderResponse) models.OrderResponse {
	return v.inner.AddUserInfoToOrderResponse(ctx, response)
}

func (v *OrderValidationService) Wrap(wrapper OrderService) OrderService {
	v.inner = wrapper
	return v
}
