package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, empty listen address or zero timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or a zero cache TTL with Redis enabled).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid user service client settings
	// (for example, missing address or negative retry count).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty service name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
