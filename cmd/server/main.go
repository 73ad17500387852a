package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/handler"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/server"
	"github.com/MKhiriev/go-daily-diary/internal/service"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/internal/workers"
	"github.com/MKhiriev/go-daily-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	clock, err := utils.NewClock(cfg.App.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading time zone")
	}
	ids := utils.NewUUIDGenerator()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), clock, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers(log, services.EntryCache)

	srv, err := server.NewServer(handlers, cfg.Server, ws, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	services.EntryCache.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
