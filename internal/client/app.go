package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/tui"
	"github.com/MKhiriev/go-patient-vault/internal/workers"
)

// App runs the terminal UI with the background workers alongside it.
type App struct {
	ui      UI
	workers *workers.Workers
	session *session.Session
	logger  *logger.Logger
}

func NewApp(ui UI, w *workers.Workers, sess *session.Session, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	if w == nil {
		w = workers.NewWorkers()
	}
	return &App{ui: ui, workers: w, session: sess, logger: logger}, nil
}

// Run blocks until the UI exits or the process is interrupted. The session
// key is destroyed on the way out.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.logger.Info().Msg("starting workers")
	a.workers.Start(ctx)
	defer func() {
		a.workers.Stop()
		if a.session != nil {
			a.session.Clear()
		}
		a.logger.Info().Msg("client stopped")
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}
