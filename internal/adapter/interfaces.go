// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for services the order service depends on.
//
// The only dependency today is the user service, reached through
// [UserServiceAdapter]. The HTTP implementation ([NewHTTPUserServiceAdapter])
// retries transport failures and 5xx answers, attaches a short-lived service
// JWT when a signing key is configured, and forwards the request trace id.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without knowing about
// HTTP (e.g. [ErrUserNotFound] for 404, [ErrServiceUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/order-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserServiceAdapter fetches users from the external user service.
type UserServiceAdapter interface {
	// GetUserByID returns the user with the given id. Returns
	// [ErrUserNotFound] when the user service does not know the id and
	// [ErrServiceUnavailable] when it cannot be reached.
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}
