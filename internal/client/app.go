package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/tui"
	"github.com/MKhiriev/riegum-client/internal/workers"
	"github.com/MKhiriev/riegum-client/models"
)

// UI is the front end driven by App.
type UI interface {
	Run(ctx context.Context, startPath string) error
	SetBackground(b tui.Background)
	NotifyDue(due []models.Plant)
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}

	ws := workers.NewWorkers(
		workers.NewWateringWatcher(services.WatchJob, cfg.WatchInterval, ui.NotifyDue),
	)
	ui.SetBackground(ws)

	return &App{services: services, ui: ui, workers: ws, logger: logger}, nil
}

// Run resumes the stored session when there is one and shows the UI until
// the user quits. Background workers never outlive Run.
func (a *App) Run(ctx context.Context) error {
	startPath := tui.HomePath

	sess, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("user", sess.DisplayName).Msg("resuming stored session")
		startPath = tui.DashboardPath
	case errors.Is(err, session.ErrNoSession):
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	defer a.workers.Stop()

	return a.ui.Run(ctx, startPath)
}
