package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every [*ValidationError] via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Messages reported for violated fields.
const (
	MsgUserIDNull   = "User ID cant be null"
	MsgItemIDNull   = "Item ID cant be null"
	MsgQuantityNull = "Quantity cant be null"
	MsgIDNull       = "ID cant be null"
	MsgPositive     = "must be greater than 0"
	MsgNotEmpty     = "must not be empty"
	MsgQuantityMax  = "must be less than or equal to 2147483647"
)

// ValidationError maps a field path (e.g. "orderItems[0].quantity") to the
// message describing why it was rejected.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// add keeps the first message reported for a field.
func (e *ValidationError) add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for field, msg := range other.Fields {
		e.add(prefix+field, msg)
	}
}

// orNil returns nil when no field was rejected.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
