package adapter

import "errors"

var (
	ErrBadRequest         = errors.New("user service rejected the request")
	ErrUserNotFound       = errors.New("user not found")
	ErrServiceUnavailable = errors.New("user service is unavailable")
	ErrTokenGeneration    = errors.New("failed to generate service token")
)
