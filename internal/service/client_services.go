package service

import (
	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/i18n"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/store"
)

// ClientServices groups the services of the sync client.
type ClientServices struct {
	Fallback   FallbackClient
	Reconciler Reconciler
	Session    *Session
	Translator *i18n.Translator
}

// NewClientServices builds every client service over storages and
// serverAdapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, notifier notify.Notifier, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	tr := i18n.New(cfg.App.Locale)

	fallback := NewFallbackClient(storages.Queue, serverAdapter, tr, cfg.App.InstitutionalDomain, logger)
	reconciler := NewReconciler(storages.Queue, serverAdapter, notifier, tr, logger)
	session := NewSession(
		storages.Queue,
		serverAdapter,
		fallback,
		reconciler,
		NewClientSyncJob(),
		SessionTimers{InitialDelay: cfg.Workers.InitialSyncDelay, Interval: cfg.Workers.SyncInterval},
		logger,
	)

	return &ClientServices{
		Fallback:   fallback,
		Reconciler: reconciler,
		Session:    session,
		Translator: tr,
	}
}
