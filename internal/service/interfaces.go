// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the sync client: the
// fallback client that substitutes local results when the backend is
// unavailable, the reconciler that replays queued requests, and the
// session that owns both for one signed-in user.
package service

import (
	"context"
	"time"

	"github.com/fahim1105/seu-matrimony/models"
)

// FallbackClient presents one method per domain operation. Each tries the
// backend first and, on a qualifying failure, returns a locally substituted
// result with the same shape. Every returned error is a *[DisplayError].
type FallbackClient interface {
	// SendRequest sends a connection request. When the backend is missing
	// the route, failing, or unreachable the request is queued on the
	// device and an offline success is returned with the local id.
	SendRequest(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error)

	// SendRequestByBiodata sends a request addressed by biodata id and
	// degrades to SendRequest when the route is unavailable.
	SendRequestByBiodata(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error)

	// SendRequestByObjectID sends a request addressed by document id and
	// degrades to SendRequest when the route is unavailable.
	SendRequestByObjectID(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error)

	// GetUserInfo fetches the user record, falling back to the cached one,
	// then to a provisional record for institutional emails.
	GetUserInfo(ctx context.Context, email string) (models.UserInfoResult, error)

	// CheckRequestStatus reads the request state, falling back to the
	// locally cached entry.
	CheckRequestStatus(ctx context.Context, sender, receiver string) (models.StatusResult, error)

	// CancelRequest cancels a request on the backend and on the device.
	CancelRequest(ctx context.Context, id, sender, receiver string) (models.Envelope, error)

	// BrowseMatches lists match candidates, falling back to the legacy
	// listing route.
	BrowseMatches(ctx context.Context, email string) (models.MatchesResult, error)

	// SendVerificationEmail asks for a verification email. A deployment
	// without the route yields a success with a warning.
	SendVerificationEmail(ctx context.Context, email string) (models.Envelope, error)

	// RegisterUser creates the backend user record.
	RegisterUser(ctx context.Context, user models.RegistrationInput) (models.RegisterResult, error)

	// CompleteRegistration finalizes registration.
	CompleteRegistration(ctx context.Context, user models.RegistrationInput) (models.RegisterResult, error)
}

// Reconciler replays queued requests against the backend.
type Reconciler interface {
	// RunPass runs one guarded reconciliation pass. When another pass is
	// running it returns immediately with Skipped set.
	RunPass(ctx context.Context) models.PassSummary

	// ForceSync runs a pass on demand with loading, success and error
	// toasts. It refuses with an info toast while a pass is running.
	ForceSync(ctx context.Context) models.Envelope

	// Status returns the snapshot polled by status indicators.
	Status() models.SyncSnapshot

	// SetAutoSync records whether the periodic schedule is armed.
	SetAutoSync(armed bool)
}

// ClientSyncJob runs a task on a schedule in the background.
type ClientSyncJob interface {
	// Start stops any running schedule, then runs task once after
	// initialDelay and every interval after that, until ctx is cancelled or
	// Stop is called.
	Start(ctx context.Context, task func(ctx context.Context), initialDelay, interval time.Duration)

	// Stop disarms the schedule and waits for the scheduler to exit. Tasks
	// already running are not cancelled.
	Stop()

	// Wait blocks until every started task has returned. It must be called
	// after Stop.
	Wait()
}
