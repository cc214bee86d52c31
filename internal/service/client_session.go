// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/store"
	"github.com/fahim1105/seu-matrimony/models"
)

// SessionTimers configures the background schedule of a [Session].
type SessionTimers struct {
	InitialDelay time.Duration
	Interval     time.Duration
}

// Session owns the sync machinery of one signed-in user. It is created once
// by the application root and started on login.
type Session struct {
	queue      store.QueueStore
	adapter    adapter.ServerAdapter
	fallback   FallbackClient
	reconciler Reconciler
	job        ClientSyncJob
	timers     SessionTimers

	mu       sync.RWMutex
	identity models.Identity
	running  bool

	logger *logger.Logger
}

// NewSession wires a Session. Nothing runs until Start.
func NewSession(queue store.QueueStore, serverAdapter adapter.ServerAdapter, fallback FallbackClient, reconciler Reconciler, job ClientSyncJob, timers SessionTimers, logger *logger.Logger) *Session {
	return &Session{
		queue:      queue,
		adapter:    serverAdapter,
		fallback:   fallback,
		reconciler: reconciler,
		job:        job,
		timers:     timers,
		logger:     logger,
	}
}

// Start binds identity and arms the initial and periodic passes. Calling it
// on a running session rebinds the credential and identity in place without
// touching the schedule. A running session can only be rebound to the same
// user.
func (s *Session) Start(ctx context.Context, identity models.Identity) error {
	if strings.TrimSpace(identity.Email) == "" {
		return ErrNoIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running && !s.identity.SameUser(identity) {
		s.logger.Warn().Str("func", "Session.Start").Str("uid", identity.UID).Msg("refused to rebind running session to another user")
		return ErrIdentitySwitch
	}

	s.adapter.SetToken(identity.Token)
	s.identity = identity

	if identity.EmailVerified || identity.IsFederated() {
		s.queue.SaveEmailVerification(identity.Email, true, models.VerificationSourceProvider)
	}

	if s.running {
		s.logger.Debug().Str("func", "Session.Start").Msg("session already running, identity rebound")
		return nil
	}

	s.running = true
	s.reconciler.SetAutoSync(true)
	s.job.Start(ctx, func(ctx context.Context) { s.reconciler.RunPass(ctx) }, s.timers.InitialDelay, s.timers.Interval)

	s.logger.Info().Str("func", "Session.Start").Str("uid", identity.UID).Msg("session started")
	return nil
}

// Stop disarms the schedule. Passes already running finish on their own.
// With logout the user's cached data and the credential are dropped.
func (s *Session) Stop(logout bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.job.Stop()
		s.reconciler.SetAutoSync(false)
		s.running = false
		s.logger.Info().Str("func", "Session.Stop").Bool("logout", logout).Msg("session stopped")
	}

	if !logout || s.identity.Email == "" {
		return
	}

	if !s.queue.ClearUserData(s.identity.Email) {
		s.logger.Warn().Str("func", "Session.Stop").Msg("user data could not be cleared")
	}
	s.adapter.SetToken("")
	s.identity = models.Identity{}
}

// Running reports whether the schedule is armed.
func (s *Session) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Identity returns the bound identity.
func (s *Session) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.running
}

func (s *Session) current() (models.Identity, error) {
	identity, ok := s.Identity()
	if !ok {
		return models.Identity{}, ErrNoSession
	}
	return identity, nil
}

// SendConnectionRequest sends a request from the signed-in user. The
// receiver is addressed by biodata id, document id, or email, in that order.
func (s *Session) SendConnectionRequest(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error) {
	identity, err := s.current()
	if err != nil {
		return models.SendResult{}, err
	}

	if req.SenderEmail == "" {
		req.SenderEmail = identity.Email
	}
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	if req.SentAt.IsZero() {
		req.SentAt = time.Now()
	}

	switch {
	case req.ReceiverBiodataID != "":
		return s.fallback.SendRequestByBiodata(ctx, req)
	case req.ReceiverObjectID != "":
		return s.fallback.SendRequestByObjectID(ctx, req)
	default:
		return s.fallback.SendRequest(ctx, req)
	}
}

// CancelConnectionRequest cancels the signed-in user's request to receiver.
func (s *Session) CancelConnectionRequest(ctx context.Context, id, receiver string) (models.Envelope, error) {
	identity, err := s.current()
	if err != nil {
		return models.Envelope{}, err
	}
	return s.fallback.CancelRequest(ctx, id, identity.Email, receiver)
}

// CheckRequestStatus reads the state of the signed-in user's request to
// receiver.
func (s *Session) CheckRequestStatus(ctx context.Context, receiver string) (models.StatusResult, error) {
	identity, err := s.current()
	if err != nil {
		return models.StatusResult{}, err
	}
	return s.fallback.CheckRequestStatus(ctx, identity.Email, receiver)
}

// UserInfo fetches the signed-in user's record.
func (s *Session) UserInfo(ctx context.Context) (models.UserInfoResult, error) {
	identity, err := s.current()
	if err != nil {
		return models.UserInfoResult{}, err
	}
	return s.fallback.GetUserInfo(ctx, identity.Email)
}

// ForceSync runs a pass now. The pass is not cancelled with ctx.
func (s *Session) ForceSync(ctx context.Context) (models.Envelope, error) {
	if _, err := s.current(); err != nil {
		return models.Envelope{}, err
	}
	return s.reconciler.ForceSync(context.WithoutCancel(ctx)), nil
}

// Status returns the reconciler snapshot.
func (s *Session) Status() models.SyncSnapshot {
	return s.reconciler.Status()
}

// PendingRequests lists the queued requests sent by the signed-in user.
func (s *Session) PendingRequests() []models.PendingRequest {
	identity, ok := s.Identity()
	if !ok {
		return nil
	}

	email := models.NormalizeEmail(identity.Email)
	var out []models.PendingRequest
	for _, r := range s.queue.GetRequests() {
		if models.NormalizeEmail(r.SenderEmail) == email {
			out = append(out, r)
		}
	}
	return out
}
