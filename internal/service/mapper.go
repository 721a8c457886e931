package service

import "github.com/MKhiriev/order-service/models"

// toOrder maps a create request to a new order. Positions are resolved
// separately because each of them needs a catalog lookup.
func toOrder(request models.OrderRequest) models.Order {
	return models.Order{
		UserID: request.UserID,
	}
}

func toOrderResponse(order models.Order) models.OrderResponse {
	items := make([]models.OrderItemRequest, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, toOrderItemResponse(item))
	}

	return models.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		OrderItems: items,
	}
}

func toOrderItemResponse(item models.OrderItem) models.OrderItemRequest {
	return models.OrderItemRequest{
		ItemID:   item.Item.ID,
		Quantity: item.Quantity,
	}
}

func toOrderResponses(orders []models.Order) []models.OrderResponse {
	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}
