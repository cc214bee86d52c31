// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the device-local persistence of the sync client:
// a string key/value [Medium] and the [QueueStore] built on top of it, which
// holds the pending-request queue, the request-status index, the user-status
// cache and the email-verification records.
package store

import (
	"github.com/fahim1105/seu-matrimony/models"
)

// Medium is a synchronous durable string key/value store.
type Medium interface {
	// Get returns the value under key. found is false when the key is absent.
	Get(key string) (value string, found bool, err error)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// SetMany stores all values or none of them.
	SetMany(values map[string]string) error
	// Close releases the medium. Further calls return an error.
	Close() error
}

// QueueStore is the typed store shared by the fallback client, the
// reconciler and the status view.
//
// No method returns an error. Storage failures are logged and degrade to the
// safe default: an empty list, the not-found value, or false.
type QueueStore interface {
	SaveRequest(in models.PendingRequestInput) (models.PendingRequest, bool)
	SaveRequestWithStatus(in models.PendingRequestInput) (models.PendingRequest, bool)
	GetRequests() []models.PendingRequest
	FindRequest(id string) (models.PendingRequest, bool)
	RemoveRequest(id string) bool
	RemoveRequestWithStatus(id, sender, receiver string) bool
	MarkRequestAsSynced(id, serverID string) bool
	GetUnsyncedRequests() []models.PendingRequest
	CountUnsynced() int

	SaveRequestStatus(sender, receiver string, status models.RequestStatus) bool
	GetRequestStatus(sender, receiver string) models.RequestStatusEntry
	RemoveRequestStatus(sender, receiver string) bool

	SaveUserStatus(email string, status models.UserStatus) bool
	GetUserStatus(email string) (models.UserStatus, bool)

	SaveEmailVerification(email string, verified bool, source models.VerificationSource) bool
	GetEmailVerification(email string) (models.VerificationRecord, bool)

	ClearAll() bool
	ClearUserData(email string) bool
}
