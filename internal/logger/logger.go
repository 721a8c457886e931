// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the order service.
//
// One *Logger is built in main and handed to every constructor. The HTTP
// middleware attaches a child carrying the request's trace_id to each request
// context; code running inside a request reads it back with FromContext or
// FromRequest, and code that may also run outside a request (startup,
// migrations, tests) uses FromContextOr with its injected logger.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// role (the service name, e.g. "order-service"), a timestamp and the calling
// function under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevel applies APP_LOG_LEVEL ("debug", "info", "warn", "error").
// An empty level keeps the receiver's level.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	if level == "" {
		return l.GetChildLogger(), nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the trace id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog hands
// back a disabled logger, so entries written to it are dropped.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none. A nil fallback behaves like [FromContext].
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}
