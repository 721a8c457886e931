package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentUserLookups bounds the fan-out of user enrichment for lists.
const maxConcurrentUserLookups = 8

type orderService struct {
	orderRepository store.OrderRepository
	itemService     ItemService
	userService     UserService

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, itemService ItemService, userService UserService, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		itemService:     itemService,
		userService:     userService,
		logger:          logger,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, request models.OrderRequest) (models.OrderResponse, error) {
	order := toOrder(request)

	orderItems, err := s.resolveOrderItems(ctx, request.OrderItems)
	if err != nil {
		return models.OrderResponse{}, err
	}
	order.OrderItems = orderItems
	order.Status = models.StatusSuccess

	saved, err := s.orderRepository.Save(ctx, order)
	if err != nil {
		return models.OrderResponse{}, fmt.Errorf("error saving order: %w", err)
	}

	return s.AddUserInfoToOrderResponse(ctx, toOrderResponse(saved)), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (models.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return models.OrderResponse{}, err
	}

	return s.AddUserInfoToOrderResponse(ctx, toOrderResponse(order)), nil
}

// GetOrdersByIDs returns the existing orders among ids sorted by id.
// Unknown ids are skipped.
func (s *orderService) GetOrdersByIDs(ctx context.Context, ids []int64) ([]models.OrderResponse, error) {
	orders, err := s.orderRepository.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error getting orders by ids: %w", err)
	}

	return s.addUserInfoToOrderResponses(ctx, toOrderResponses(orders)), nil
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, status models.Status) ([]models.OrderResponse, error) {
	orders, err := s.orderRepository.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error getting orders by status %s: %w", status, err)
	}

	return s.addUserInfoToOrderResponses(ctx, toOrderResponses(orders)), nil
}

// UpdateOrderByID replaces all positions of an existing order.
func (s *orderService) UpdateOrderByID(ctx context.Context, request models.UpdateOrderRequest, id int64) (models.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return models.OrderResponse{}, err
	}

	orderItems, err := s.resolveOrderItems(ctx, request.OrderItems)
	if err != nil {
		return models.OrderResponse{}, err
	}
	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}
	order.OrderItems = orderItems
	order.Status = models.StatusSuccess

	saved, err := s.orderRepository.Save(ctx, order)
	if errors.Is(err, store.ErrOrderNotFound) {
		return models.OrderResponse{}, orderNotFound(id)
	}
	if err != nil {
		return models.OrderResponse{}, fmt.Errorf("error updating order %d: %w", id, err)
	}

	return s.AddUserInfoToOrderResponse(ctx, toOrderResponse(saved)), nil
}

func (s *orderService) DeleteOrderByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return newDomainError(ErrInvalidArgument, "ID can't be null")
	}

	exists, err := s.orderRepository.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking order %d: %w", id, err)
	}
	if !exists {
		return orderNotFound(id)
	}

	err = s.orderRepository.DeleteByID(ctx, id)
	if errors.Is(err, store.ErrOrderNotFound) {
		return orderNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("error deleting order %d: %w", id, err)
	}

	return nil
}

func (s *orderService) AddUserInfoToOrderResponse(ctx context.Context, response models.OrderResponse) models.OrderResponse {
	user, err := s.userService.GetUserByID(ctx, response.UserID)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).
			Int64("user_id", response.UserID).
			Str("func", "*orderService.AddUserInfoToOrderResponse").
			Msg("failed to fetch user info")
		return response
	}

	response.User = &user
	return response
}

func (s *orderService) addUserInfoToOrderResponses(ctx context.Context, responses []models.OrderResponse) []models.OrderResponse {
	var g errgroup.Group
	g.SetLimit(maxConcurrentUserLookups)

	for i := range responses {
		g.Go(func() error {
			responses[i] = s.AddUserInfoToOrderResponse(ctx, responses[i])
			return nil
		})
	}
	_ = g.Wait()

	return responses
}

func (s *orderService) findOrder(ctx context.Context, id int64) (models.Order, error) {
	order, err := s.orderRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrOrderNotFound) {
		return models.Order{}, orderNotFound(id)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("error getting order %d: %w", id, err)
	}
	return order, nil
}

// resolveOrderItems looks up every referenced item. The first unknown item
// aborts the whole operation.
func (s *orderService) resolveOrderItems(ctx context.Context, requests []models.OrderItemRequest) ([]models.OrderItem, error) {
	orderItems := make([]models.OrderItem, 0, len(requests))
	for _, request := range requests {
		item, err := s.itemService.GetItemByID(ctx, request.ItemID)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, models.OrderItem{
			Item:     item,
			Quantity: request.Quantity,
		})
	}
	return orderItems, nil
}
