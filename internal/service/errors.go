package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemNotFound    = errors.New("item not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// DomainError pairs one of the sentinels above with the message shown to
// API clients. errors.Is matches it against Kind.
type DomainError struct {
	Kind    error
	Message string
}

func newDomainError(kind error, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func orderNotFound(id int64) error {
	return newDomainError(ErrOrderNotFound, "There is no order with id %d", id)
}

func itemNotFound(id int64) error {
	return newDomainError(ErrItemNotFound, "Item not found: %d", id)
}
