package tui

import (
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/models"
)

type refreshMsg struct {
	status  models.SyncSnapshot
	pending []models.PendingRequest
}

type tickMsg struct{}

type toastMsg struct {
	toast notify.Toast
}

type sendDoneMsg struct {
	result models.SendResult
	err    error
}

type cancelDoneMsg struct {
	result models.Envelope
	err    error
}

type syncDoneMsg struct {
	result models.Envelope
	err    error
}

type copiedMsg struct {
	id  string
	err error
}
