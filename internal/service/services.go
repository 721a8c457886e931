// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/order-service/internal/adapter"
	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	ItemService    ItemService
	UserService    UserService
	OrderService   OrderService
}

// NewServices builds the service layer on top of the storages and the user
// service adapter. The returned OrderService validates its input before
// reaching the repositories.
func NewServices(storages *store.Storages, userAdapter adapter.UserServiceAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	itemService := NewItemService(storages.ItemRepository, logger)
	userService := NewUserService(userAdapter, storages.UserCache, logger)
	orderService := NewOrderValidationService().Wrap(
		NewOrderService(storages.OrderRepository, itemService, userService, logger),
	)

	return &Services{
		AppInfoService: appInfoService,
		ItemService:    itemService,
		UserService:    userService,
		OrderService:   orderService,
	}, nil
}
