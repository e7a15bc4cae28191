// Package tui is the terminal client of the list service.
//
// A single Bubble Tea program drives every screen. Screens render straight
// from the client views, so a pushed snapshot or an optimistic mutation only
// has to trigger a redraw.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/workers"
	"github.com/MKhiriev/eat-that-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	workers   *workers.Workers
	lists     config.ClientLists
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, workers *workers.Workers, lists config.ClientLists,
	buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		workers:   workers,
		lists:     lists,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. It returns ErrUserQuit on a regular
// exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t, nil)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	result, ok := finalModel.(appModel)
	if !ok {
		result = model
	}
	result.close()
	t.workers.StopAll()

	if err != nil {
		return fmt.Errorf("tui program: %w", err)
	}
	if result.err != nil {
		return result.err
	}
	return ErrUserQuit
}
