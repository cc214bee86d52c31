// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/service"
	"github.com/fahim1105/seu-matrimony/models"
)

// maxToasts bounds the toast history shown under the list.
const maxToasts = 5

type model struct {
	ctx       context.Context
	commands  Commands
	toastsCh  <-chan notify.Toast
	identity  string
	buildInfo models.BuildInfo

	status  models.SyncSnapshot
	pending []models.PendingRequest
	idx     int

	composing bool
	receiver  textinput.Model
	busy      bool
	spinner   spinner.Model

	toasts        []notify.Toast
	statusLine    string
	errMsg        string
	showBuildInfo bool

	logout bool
}

func newModel(ctx context.Context, commands Commands, toasts <-chan notify.Toast, identity string, buildInfo models.BuildInfo) model {
	receiver := textinput.New()
	receiver.Placeholder = "receiver@seu.edu.bd"
	receiver.CharLimit = 254

	return model{
		ctx:       ctx,
		commands:  commands,
		toastsCh:  toasts,
		identity:  identity,
		buildInfo: buildInfo,
		receiver:  receiver,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdRefresh(), cmdTick(), waitForToast(m.toastsCh), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.status = msg.status
		m.pending = msg.pending
		m.clampIndex()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.cmdRefresh(), cmdTick())

	case toastMsg:
		m.toasts = append(m.toasts, msg.toast)
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		return m, tea.Batch(waitForToast(m.toastsCh), m.cmdRefresh())

	case sendDoneMsg:
		m.busy = false
		m.applyOutcome(msg.result.Envelope, msg.err)
		return m, m.cmdRefresh()

	case cancelDoneMsg:
		m.busy = false
		m.applyOutcome(msg.result, msg.err)
		return m, m.cmdRefresh()

	case syncDoneMsg:
		m.busy = false
		m.applyOutcome(msg.result, msg.err)
		return m, m.cmdRefresh()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusLine = "copied " + msg.id
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.composing {
		var cmd tea.Cmd
		m.receiver, cmd = m.receiver.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.composing {
		return m.updateComposing(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.pending)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.newItem):
		m.composing = true
		m.receiver.SetValue("")
		return m, m.receiver.Focus()
	case key.Matches(msg, keys.sync):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdForceSync()
	case key.Matches(msg, keys.delete):
		p, ok := m.current()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdCancel(p.ID, p.ReceiverEmail)
	case key.Matches(msg, keys.copy):
		p, ok := m.current()
		if !ok {
			m.statusLine = "nothing to copy"
			return m, nil
		}
		return m, cmdCopy(p.ID)
	}

	return m, nil
}

func (m model) updateComposing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.composing = false
		m.receiver.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		receiver := strings.TrimSpace(m.receiver.Value())
		if !strings.Contains(receiver, "@") {
			m.errMsg = "enter the receiver's email"
			return m, nil
		}
		m.composing = false
		m.receiver.Blur()
		m.busy = true
		m.errMsg = ""
		return m, m.cmdSend(receiver)
	}

	var cmd tea.Cmd
	m.receiver, cmd = m.receiver.Update(msg)
	return m, cmd
}

// applyOutcome shows an envelope or a display error.
func (m *model) applyOutcome(env models.Envelope, err error) {
	if err != nil {
		m.statusLine = ""
		if de, ok := service.AsDisplayError(err); ok {
			m.errMsg = de.Message
			return
		}
		m.errMsg = err.Error()
		return
	}

	m.errMsg = ""
	m.statusLine = env.Message
	if env.Warning != "" {
		m.statusLine += " (" + env.Warning + ")"
	}
	if !env.Success && env.Message != "" {
		m.errMsg = env.Message
		m.statusLine = ""
	}
}

func (m model) current() (models.PendingRequest, bool) {
	if m.idx < 0 || m.idx >= len(m.pending) {
		return models.PendingRequest{}, false
	}
	return m.pending[m.idx], true
}

func (m *model) clampIndex() {
	if m.idx >= len(m.pending) {
		m.idx = len(m.pending) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}
