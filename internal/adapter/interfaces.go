// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the matrimony
// backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST contract. Every failed call returns an *[Error] tagged
// with a [Kind], so callers switch on the failure class instead of raw status
// codes. The sentinels in errors.go are reachable through [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/fahim1105/seu-matrimony/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines authenticated communication with the backend.
// Implementations must be safe for concurrent use.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Ping checks backend availability via GET /health.
	Ping(ctx context.Context) error

	// SendRequest creates a connection request via POST /send-request.
	SendRequest(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error)

	// SendRequestByBiodata creates a connection request addressed by the
	// receiver's biodata id.
	SendRequestByBiodata(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error)

	// SendRequestByObjectID creates a connection request addressed by the
	// receiver's document id.
	SendRequestByObjectID(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error)

	// CheckRequestStatus reads the request state between two users.
	CheckRequestStatus(ctx context.Context, sender, receiver string) (models.ServerStatusResponse, error)

	// CancelRequest deletes the request with the given server or local id.
	CancelRequest(ctx context.Context, id string) (models.ServerMessage, error)

	// GetUserInfo fetches the backend user record for email.
	GetUserInfo(ctx context.Context, email string) (models.UserStatus, error)

	// BrowseMatches lists match candidates for email.
	BrowseMatches(ctx context.Context, email string) ([]json.RawMessage, error)

	// BrowseMatchesLegacy lists all biodata except email's own, for
	// deployments without the browse endpoint.
	BrowseMatchesLegacy(ctx context.Context, email string) ([]json.RawMessage, error)

	// SendVerificationEmail asks the backend to send a verification email.
	SendVerificationEmail(ctx context.Context, email string) (models.ServerMessage, error)

	// RegisterUser creates the backend user record.
	RegisterUser(ctx context.Context, user models.RegistrationInput) (models.ServerMessage, error)

	// CompleteRegistration finalizes registration after verification.
	CompleteRegistration(ctx context.Context, user models.RegistrationInput) (models.ServerMessage, error)
}
