package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-daily-diary/internal/cli"
	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("diary-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app := cli.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = app.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
