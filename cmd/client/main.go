package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/eat-that-list/internal/client"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/tui"
	"github.com/MKhiriev/eat-that-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("eat-that-list-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := client.NewApp(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	if err = app.Run(); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
	}
}
