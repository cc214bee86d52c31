package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/models"
)

// ErrUserQuit is returned by Run when the user quit without logging out.
var ErrUserQuit = errors.New("user quit")

// TUI runs the status view.
type TUI struct {
	commands  Commands
	toasts    <-chan notify.Toast
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func New(commands Commands, toasts <-chan notify.Toast, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{commands: commands, toasts: toasts, buildInfo: buildInfo, logger: logger}
}

// Run shows the view for identity until the user quits or ctx is done. It
// returns nil on logout and ErrUserQuit on quit.
func (t *TUI) Run(ctx context.Context, identity string) error {
	m := newModel(ctx, t.commands, t.toasts, identity, t.buildInfo)

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if !result.logout {
		return ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.Run").Msg("user logged out")
	return nil
}
