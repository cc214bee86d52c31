package service

import (
	"net/http"
	"sync/atomic"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/i18n"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/store"
)

const testDomain = "seu.edu.bd"

// switchMedium is a memory medium whose writes can be made to fail.
type switchMedium struct {
	store.Medium
	failWrites atomic.Bool
}

func newSwitchMedium() *switchMedium {
	return &switchMedium{Medium: store.NewMemoryMedium(0)}
}

func (m *switchMedium) Set(key, value string) error {
	if m.failWrites.Load() {
		return store.ErrQuotaExceeded
	}
	return m.Medium.Set(key, value)
}

func (m *switchMedium) SetMany(values map[string]string) error {
	if m.failWrites.Load() {
		return store.ErrQuotaExceeded
	}
	return m.Medium.SetMany(values)
}

func newTestQueue() (store.QueueStore, *switchMedium) {
	medium := newSwitchMedium()
	return store.NewQueueStore(medium, logger.Nop()), medium
}

func testTranslator() *i18n.Translator {
	return i18n.New("en")
}

func notFoundErr() error {
	return &adapter.Error{Kind: adapter.KindNotFound, Status: http.StatusNotFound, Message: "Not Found"}
}

func serverErr() error {
	return &adapter.Error{Kind: adapter.KindServerError, Status: http.StatusInternalServerError}
}

func networkErr() error {
	return &adapter.Error{Kind: adapter.KindTimeout}
}

func clientErr(status int, message, code string) error {
	return &adapter.Error{Kind: adapter.KindClientError, Status: status, Message: message, Code: code}
}
