package http

import (
	"time"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
