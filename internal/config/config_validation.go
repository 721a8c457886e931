// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServiceName == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: address and timeouts are required", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.UserTTL <= 0 {
		return fmt.Errorf("%w: user TTL is required when redis is enabled", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.UserServiceAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: user service address and timeout are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.TokenSignKey != "" && cfg.Adapter.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration is required with a sign key", ErrInvalidAdapterConfigs)
	}

	return nil
}
