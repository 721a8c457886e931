package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/handler"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_ServesUntilContextIsCancelled(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String())

	err = srv.run(context.Background())
	assert.ErrorIs(t, err, errServerFailed)
}
