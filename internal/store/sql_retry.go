// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/sethvargo/go-retry"
)

// withRetry runs fn and repeats it with exponential backoff while the
// returned error is classified as [Retryable]. The last error is returned
// unwrapped once attempts are exhausted.
func withRetry[T any](ctx context.Context, db *DB, fn func(ctx context.Context) (T, error)) (T, error) {
	log := logger.FromContextOr(ctx, db.logger)

	var result T
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(db.retryBase))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		value, err := fn(ctx)
		if err == nil {
			result = value
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "store.withRetry").
				Int("attempt", attempt).
				Msg("retryable database error")
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// execWithRetry is [withRetry] for calls without a result.
func execWithRetry(ctx context.Context, db *DB, fn func(ctx context.Context) error) error {
	_, err := withRetry(ctx, db, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

