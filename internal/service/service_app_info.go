package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
)

// appInfoService serves GET /version. The version comes from APP_VERSION
// and is fixed for the lifetime of the process.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when APP_VERSION is
// empty or blank, so a deployment without a version never starts.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("service_name", cfg.ServiceName).
		Str("version", version).
		Msg("order service version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
