package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/internal/tui"
	"github.com/MKhiriev/eat-that-list/internal/workers"
	"github.com/MKhiriev/eat-that-list/models"
)

// App is the terminal client: local session store, server transport and the
// TUI on top of the client services.
type App struct {
	ctx      context.Context
	storages *store.ClientStorages
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp loads the client config and wires the client together. The app
// runs until ctx ends or the user quits.
func NewApp(ctx context.Context, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	return newApp(ctx, cfg, buildInfo, logger)
}

func newApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	subscriber, err := adapter.NewWSSubscriber(cfg.Adapter, cfg.Workers, serverAdapter.Token, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create push subscriber: %w", err)
	}

	services := service.NewClientServices(storages.SessionRepository, serverAdapter, subscriber, cfg.Lists, logger)
	ui := tui.New(services, workers.New(logger), cfg.Lists, buildInfo, logger)

	return &App{
		ctx:      ctx,
		storages: storages,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run blocks until the user quits. A regular exit returns tui.ErrUserQuit.
func (a *App) Run() error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	return a.ui.Run(a.ctx)
}

// Close releases the local storage.
func (a *App) Close() error {
	return a.storages.Close()
}
