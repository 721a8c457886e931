package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/handler"
	"github.com/MKhiriev/order-service/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if err := s.httpServer.Shutdown(); err != nil {
		s.logger.Err(err).Str("func", "*server.Shutdown").Msg("HTTP server shutdown failed")
	}
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("%w: %w", errServerFailed, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server...")
	s.Shutdown()

	if err := <-serveErr; err != nil {
		return fmt.Errorf("%w: %w", errServerFailed, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
