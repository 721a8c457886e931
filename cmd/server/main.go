package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/order-service/internal/adapter"
	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/handler"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/server"
	"github.com/MKhiriev/order-service/internal/service"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("order-service").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewLogger(cfg.App.ServiceName).WithLevel(cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger(cfg.App.ServiceName).Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("version", cfg.App.Version).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	userAdapter, err := adapter.NewHTTPUserServiceAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user service adapter")
	}

	services, err := service.NewServices(storages, userAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
