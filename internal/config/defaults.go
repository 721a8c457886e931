package config

import "time"

const (
	defaultServiceName     = "order-service"
	defaultVersion         = "1.0-SNAPSHOT"
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultUserTTL         = 5 * time.Minute
	defaultAdapterTimeout  = 5 * time.Second
	defaultRetryCount      = 2
	defaultTokenDuration   = 5 * time.Minute
)

// defaultConfig returns the lowest-priority configuration layer.
// DSN and the user service address have no defaults and must be provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ServiceName: defaultServiceName,
			Version:     defaultVersion,
			LogLevel:    "debug",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
			Cache: Cache{
				UserTTL: defaultUserTTL,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
			RetryCount:     defaultRetryCount,
			TokenDuration:  defaultTokenDuration,
		},
	}
}
