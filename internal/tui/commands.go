package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/service"
	"github.com/fahim1105/seu-matrimony/models"
)

// Commands is the session surface the view drives. *service.Session
// implements it.
type Commands interface {
	SendConnectionRequest(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error)
	CancelConnectionRequest(ctx context.Context, id, receiver string) (models.Envelope, error)
	ForceSync(ctx context.Context) (models.Envelope, error)
	Status() models.SyncSnapshot
	PendingRequests() []models.PendingRequest
}

var _ Commands = (*service.Session)(nil)

const refreshInterval = time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m model) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{status: m.commands.Status(), pending: m.commands.PendingRequests()}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func waitForToast(toasts <-chan notify.Toast) tea.Cmd {
	if toasts == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-toasts
		if !ok {
			return nil
		}
		return toastMsg{toast: t}
	}
}

func (m model) cmdSend(receiver string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.commands.SendConnectionRequest(m.ctx, models.PendingRequestInput{ReceiverEmail: receiver})
		return sendDoneMsg{result: res, err: err}
	}
}

func (m model) cmdCancel(id, receiver string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.commands.CancelConnectionRequest(m.ctx, id, receiver)
		return cancelDoneMsg{result: res, err: err}
	}
}

func (m model) cmdForceSync() tea.Cmd {
	return func() tea.Msg {
		res, err := m.commands.ForceSync(m.ctx)
		return syncDoneMsg{result: res, err: err}
	}
}

func cmdCopy(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: writeClipboard(id)}
	}
}
