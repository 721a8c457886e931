// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"id":7,"name":"Ivan","surname":"Petrov","email":"ivan@example.com","birthDate":"1990-03-14"}`

// newTestAdapter creates an httpUserServiceAdapter pointed at the test server
func newTestAdapter(t *testing.T, serverURL string, mutate ...func(cfg *config.Adapter)) *httpUserServiceAdapter {
	t.Helper()
	adapterCfg := config.Adapter{
		UserServiceAddress: serverURL,
		RequestTimeout:     time.Second,
		RetryCount:         0,
	}
	for _, m := range mutate {
		m(&adapterCfg)
	}
	appCfg := config.App{ServiceName: "order-service"}

	a, err := NewHTTPUserServiceAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpUserServiceAdapter)
}

func writeUser(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(userJSON))
}

// ── GetUserByID ─────────────────────────────────────────────────────────────

func TestGetUserByID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeUser(w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.GetUserByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ivan", user.Name)
	assert.Equal(t, "Petrov", user.Surname)
	assert.Equal(t, "ivan@example.com", user.Email)
	assert.Equal(t, "1990-03-14", user.BirthDate.String())
}

func TestGetUserByID_SendsServiceToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateServiceToken(token, "sign-key", "order-service")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "order-service", claims.Subject)

		writeUser(w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func(cfg *config.Adapter) {
		cfg.TokenSignKey = "sign-key"
		cfg.TokenDuration = time.Minute
	})

	_, err := a.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
}

func TestGetUserByID_TokenGenerationFails(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", func(cfg *config.Adapter) {
		cfg.TokenSignKey = "sign-key"
		cfg.TokenDuration = 0
	})

	_, err := a.GetUserByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrTokenGeneration)
}

func TestGetUserByID_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get("X-Trace-ID"))
		writeUser(w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-42")

	_, err := a.GetUserByID(ctx, 7)
	require.NoError(t, err)
}

func TestGetUserByID_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrUserNotFound},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrServiceUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetUserByID(context.Background(), 7)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetUserByID_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeUser(w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, func(cfg *config.Adapter) { cfg.RetryCount = 2 })

	user, err := a.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, int32(2), hits.Load())
}

func TestGetUserByID_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetUserByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── NewHTTPUserServiceAdapter ───────────────────────────────────────────────

func TestNewHTTPUserServiceAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPUserServiceAdapter(config.Adapter{UserServiceAddress: "  "}, config.App{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "with scheme", raw: "http://users:8081", want: "http://users:8081"},
		{name: "without scheme", raw: "users:8081", want: "http://users:8081"},
		{name: "trailing slash", raw: "https://users.example.com/", want: "https://users.example.com"},
		{name: "path prefix", raw: "http://gateway/api/v1/", want: "http://gateway/api/v1"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
