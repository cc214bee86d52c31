package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/store"
	"github.com/fahim1105/seu-matrimony/internal/stubserver"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e2eSender   = "alice@seu.edu.bd"
	e2eReceiver = "bob@seu.edu.bd"
)

type e2eFixture struct {
	handler  *stubserver.Handler
	backend  *stubserver.Backend
	queue    store.QueueStore
	recorder *notify.Recorder
	session  *Session
}

func newE2E(t *testing.T, mode stubserver.Mode, job ClientSyncJob, timers SessionTimers) e2eFixture {
	t.Helper()

	backend := stubserver.NewBackend(testDomain)
	backend.SeedBiodata(stubserver.Biodata{BiodataID: "B-1", ObjectID: "obj-1", Email: e2eReceiver, Name: "Bob"})
	handler := stubserver.NewHandler(backend, mode, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	queue := store.NewQueueStore(store.NewMemoryMedium(0), logger.Nop())
	recorder := notify.NewRecorder()
	tr := testTranslator()

	fallback := NewFallbackClient(queue, serverAdapter, tr, testDomain, logger.Nop())
	reconciler := NewReconciler(queue, serverAdapter, recorder, tr, logger.Nop())
	session := NewSession(queue, serverAdapter, fallback, reconciler, job, timers, logger.Nop())

	require.NoError(t, session.Start(context.Background(), models.Identity{
		UID:           "uid-alice",
		Email:         e2eSender,
		EmailVerified: true,
		Token:         "e2e-token",
	}))
	t.Cleanup(func() {
		session.Stop(false)
		job.Wait()
	})

	return e2eFixture{
		handler:  handler,
		backend:  backend,
		queue:    queue,
		recorder: recorder,
		session:  session,
	}
}

func TestE2E_QueuedWhileDownDeliveredByScheduledPass(t *testing.T) {
	f := newE2E(t, stubserver.ModeDown, NewClientSyncJob(), SessionTimers{InitialDelay: -1, Interval: 20 * time.Millisecond})
	ctx := context.Background()

	res, err := f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Offline)
	assert.Equal(t, 1, f.session.Status().PendingCount)
	assert.Empty(t, f.backend.Requests())

	// Passes while the backend is down leave the queue alone and stay quiet.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, f.session.Status().PendingCount)
	assert.Empty(t, f.recorder.Toasts())

	f.handler.SetMode(stubserver.ModeUp)

	require.Eventually(t, func() bool {
		return f.recorder.Count(notify.LevelSuccess) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, f.session.Status().PendingCount)
	requests := f.backend.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, e2eSender, requests[0].SenderEmail)
	assert.Equal(t, e2eReceiver, requests[0].ReceiverEmail)

	// Later passes find nothing new and do not toast again.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, f.recorder.Count(notify.LevelSuccess))
	assert.Len(t, f.backend.Requests(), 1)

	pending := f.session.PendingRequests()
	require.Len(t, pending, 1)
	assert.True(t, pending[0].Synced)
}

func TestE2E_ForceSyncMarksServerDuplicateAsSynced(t *testing.T) {
	f := newE2E(t, stubserver.ModeDown, &fakeJob{}, SessionTimers{Interval: time.Hour})
	ctx := context.Background()

	_, err := f.backend.SendRequest(models.PendingRequestInput{SenderEmail: e2eSender, ReceiverEmail: e2eReceiver, Status: models.RequestStatusPending})
	require.NoError(t, err)

	_, err = f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
	require.NoError(t, err)
	require.Equal(t, 1, f.session.Status().PendingCount)

	f.handler.SetMode(stubserver.ModeUp)

	env, err := f.session.ForceSync(ctx)
	require.NoError(t, err)
	assert.True(t, env.Success)

	assert.Equal(t, 0, f.session.Status().PendingCount)
	assert.Len(t, f.backend.Requests(), 1)
	assert.Equal(t, 1, f.recorder.Count(notify.LevelLoading))
	assert.Equal(t, 1, f.recorder.Count(notify.LevelSuccess))
	assert.Zero(t, f.recorder.Count(notify.LevelError))
}

func TestE2E_ForceSyncWhileDownReportsUnreachable(t *testing.T) {
	f := newE2E(t, stubserver.ModeDown, &fakeJob{}, SessionTimers{Interval: time.Hour})
	ctx := context.Background()

	_, err := f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
	require.NoError(t, err)

	env, err := f.session.ForceSync(ctx)
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.True(t, env.Offline)
	assert.Equal(t, 1, f.recorder.Count(notify.LevelError))
	assert.Equal(t, 1, f.session.Status().PendingCount)
}

func TestE2E_LegacyBackendFallsBackToEmailSend(t *testing.T) {
	f := newE2E(t, stubserver.ModeLegacy, &fakeJob{}, SessionTimers{Interval: time.Hour})

	res, err := f.session.SendConnectionRequest(context.Background(), models.PendingRequestInput{
		ReceiverEmail:     e2eReceiver,
		ReceiverBiodataID: "B-1",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Offline)
	assert.NotEmpty(t, res.InsertedID)
	assert.Len(t, f.backend.Requests(), 1)
	assert.Zero(t, f.session.Status().PendingCount)
}

func TestE2E_LiveDuplicateIsRejected(t *testing.T) {
	f := newE2E(t, stubserver.ModeUp, &fakeJob{}, SessionTimers{Interval: time.Hour})
	ctx := context.Background()

	_, err := f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
	require.NoError(t, err)

	_, err = f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Zero(t, f.session.Status().PendingCount)
}

func TestE2E_CancelDeliveredRequestReachesBackend(t *testing.T) {
	cases := map[string]bool{
		"delivered by replay":   false,
		"absorbed as duplicate": true,
	}

	for name, seedOnServer := range cases {
		t.Run(name, func(t *testing.T) {
			f := newE2E(t, stubserver.ModeDown, &fakeJob{}, SessionTimers{Interval: time.Hour})
			ctx := context.Background()

			if seedOnServer {
				_, err := f.backend.SendRequest(models.PendingRequestInput{SenderEmail: e2eSender, ReceiverEmail: e2eReceiver, Status: models.RequestStatusPending})
				require.NoError(t, err)
			}

			res, err := f.session.SendConnectionRequest(ctx, models.PendingRequestInput{ReceiverEmail: e2eReceiver})
			require.NoError(t, err)
			require.True(t, res.Offline)

			f.handler.SetMode(stubserver.ModeUp)
			_, err = f.session.ForceSync(ctx)
			require.NoError(t, err)
			require.Len(t, f.backend.Requests(), 1)

			env, err := f.session.CancelConnectionRequest(ctx, res.InsertedID, e2eReceiver)
			require.NoError(t, err)
			assert.True(t, env.Success)
			assert.False(t, env.Offline)

			assert.Empty(t, f.backend.Requests())
			assert.Empty(t, f.session.PendingRequests())
		})
	}
}
