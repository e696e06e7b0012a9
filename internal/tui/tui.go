// Package tui is the terminal user interface of the clinic client. It is a
// thin Bubble Tea layer over the service package: a login screen, the case
// list with a detail view and checklist toggles, and a pending-changes
// screen for inspecting and draining the offline queue.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/internal/service"
	"github.com/vetward/vetward/models"
)

// ErrUserQuit signals that the operator closed the program from the login
// screen instead of signing in.
var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the login screen until the operator signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := NewLoginModel(ctx, t.services.CaseService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if !result.done {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the case list until the operator quits or logs out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
