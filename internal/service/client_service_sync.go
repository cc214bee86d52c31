package service

import (
	"context"
	"sync/atomic"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/i18n"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/store"
	"github.com/fahim1105/seu-matrimony/models"
)

type reconciler struct {
	queue    store.QueueStore
	adapter  adapter.ServerAdapter
	notifier notify.Notifier
	tr       *i18n.Translator

	syncing  atomic.Bool
	autoSync atomic.Bool

	logger *logger.Logger
}

// NewReconciler returns a [Reconciler] that replays queue through
// serverAdapter and reports to notifier.
func NewReconciler(queue store.QueueStore, serverAdapter adapter.ServerAdapter, notifier notify.Notifier, tr *i18n.Translator, logger *logger.Logger) Reconciler {
	return &reconciler{
		queue:    queue,
		adapter:  serverAdapter,
		notifier: notifier,
		tr:       tr,
		logger:   logger,
	}
}

func (r *reconciler) RunPass(ctx context.Context) models.PassSummary {
	if !r.syncing.CompareAndSwap(false, true) {
		r.logger.Debug().Str("func", "reconciler.RunPass").Msg("pass already running, skipped")
		return models.PassSummary{Skipped: true}
	}
	defer r.syncing.Store(false)

	summary := r.pass(ctx)
	if summary.NewlySynced() > 0 {
		r.notifier.Success(r.tr.T(i18n.SyncDelivered, summary.NewlySynced()))
	}
	return summary
}

// pass runs while the guard is held.
func (r *reconciler) pass(ctx context.Context) models.PassSummary {
	if err := r.adapter.Ping(ctx); err != nil {
		r.logger.Debug().Err(err).Str("func", "reconciler.pass").Msg("backend unreachable, pass skipped")
		return models.PassSummary{Reachable: false}
	}

	summary := models.PassSummary{Reachable: true}
	for _, p := range r.queue.GetUnsyncedRequests() {
		summary.Attempted++

		resp, err := r.adapter.SendRequest(ctx, p.Input())
		switch {
		case err == nil:
			if r.queue.MarkRequestAsSynced(p.ID, resp.InsertedID) {
				summary.Synced++
				continue
			}
		case isDuplicate(err):
			if r.queue.MarkRequestAsSynced(p.ID, "") {
				summary.Duplicates++
				continue
			}
		default:
			r.logger.Warn().Err(err).Str("func", "reconciler.pass").Str("id", p.ID).Msg("replay failed, request stays queued")
			summary.Failed++
			continue
		}

		r.logger.Warn().Str("func", "reconciler.pass").Str("id", p.ID).Msg("replayed but could not be marked as synced")
		summary.Failed++
	}

	r.logger.Info().
		Str("func", "reconciler.pass").
		Int("attempted", summary.Attempted).
		Int("synced", summary.Synced).
		Int("duplicates", summary.Duplicates).
		Int("failed", summary.Failed).
		Msg("sync pass finished")

	return summary
}

func (r *reconciler) ForceSync(ctx context.Context) models.Envelope {
	if r.syncing.Load() {
		msg := r.tr.T(i18n.SyncAlreadyRunning)
		r.notifier.Info(msg)
		return models.Envelope{Success: false, Message: msg}
	}

	r.notifier.Loading(r.tr.T(i18n.SyncLoading))
	summary := r.RunPass(ctx)

	switch {
	case summary.Skipped:
		msg := r.tr.T(i18n.SyncAlreadyRunning)
		r.notifier.Info(msg)
		return models.Envelope{Success: false, Message: msg}
	case !summary.Reachable:
		msg := r.tr.T(i18n.SyncUnreachable)
		r.notifier.Error(msg)
		return models.Envelope{Success: false, Message: msg, Offline: true}
	case summary.Failed > 0:
		msg := r.tr.T(i18n.SyncPartialFailure, summary.Failed)
		r.notifier.Error(msg)
		return models.Envelope{Success: false, Message: msg}
	case summary.NewlySynced() > 0:
		// RunPass already sent the delivery toast
		return models.Envelope{Success: true, Message: r.tr.T(i18n.SyncDelivered, summary.NewlySynced())}
	default:
		msg := r.tr.T(i18n.SyncUpToDate)
		r.notifier.Success(msg)
		return models.Envelope{Success: true, Message: msg}
	}
}

func (r *reconciler) Status() models.SyncSnapshot {
	return models.SyncSnapshot{
		IsSyncing:    r.syncing.Load(),
		PendingCount: r.queue.CountUnsynced(),
		HasAutoSync:  r.autoSync.Load(),
	}
}

func (r *reconciler) SetAutoSync(armed bool) {
	r.autoSync.Store(armed)
}
