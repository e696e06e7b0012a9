package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetward/vetward/internal/adapter"
	"github.com/vetward/vetward/internal/config"
	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/internal/service"
	"github.com/vetward/vetward/internal/store"
	"github.com/vetward/vetward/internal/tui"
)

type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	services *service.ClientServices
	tui      *tui.TUI
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	svcs := service.NewClientServices(storages, serverAdapter, log)
	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{cfg: cfg, log: log, services: svcs, tui: ui}, nil
}

// Run drives one full session: sign in, drain any queue left over from a
// previous session, keep the background job running while the operator works
// in the TUI, and start over after a logout.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.log.Info().Str("principal", session.Principal).Msg("signed in")

	if _, err = a.services.SyncEngine.SyncAll(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial drain failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Sync.Interval)
	defer a.services.SyncJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.SyncJob.Stop()
		if err = a.services.CaseService.Logout(ctx); err != nil {
			a.log.Warn().Err(err).Msg("logout cleanup failed")
		}
		return a.Run()
	}

	return nil
}
