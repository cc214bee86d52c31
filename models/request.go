// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestStatus is the lifecycle state of a connection request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// PendingRequest is a connection request that was queued on this device
// because the live send could not reach the server.
//
// The JSON field names are the persisted layout of the "pendingRequests"
// table and must not change.
type PendingRequest struct {
	// ID is generated locally ("local_<uuid>") and is the only idempotency
	// key of the queue. It is never reused.
	ID string `json:"id"`

	SenderEmail   string `json:"senderEmail"`
	ReceiverEmail string `json:"receiverEmail"`

	// ReceiverBiodataID and ReceiverObjectID are carried along when the
	// request was degraded from an id-based send.
	ReceiverBiodataID string `json:"receiverBiodataId,omitempty"`
	ReceiverObjectID  string `json:"receiverObjectId,omitempty"`

	// Status is always pending at creation.
	Status RequestStatus `json:"status"`

	SentAt time.Time `json:"sentAt"`

	// Timestamp is the time the record was written to the store.
	Timestamp time.Time `json:"timestamp"`

	// Synced is flipped to true only by the reconciler.
	Synced bool `json:"synced"`

	// ServerID is the backend's id of the delivered request, set on replay
	// when the backend reports one.
	ServerID string `json:"serverId,omitempty"`
}

// PendingRequestInput is the caller-supplied part of a connection request.
type PendingRequestInput struct {
	SenderEmail       string        `json:"senderEmail"`
	ReceiverEmail     string        `json:"receiverEmail,omitempty"`
	ReceiverBiodataID string        `json:"receiverBiodataId,omitempty"`
	ReceiverObjectID  string        `json:"receiverObjectId,omitempty"`
	Status            RequestStatus `json:"status"`
	SentAt            time.Time     `json:"sentAt"`
}

// Input returns the wire form used when the request is replayed.
func (p PendingRequest) Input() PendingRequestInput {
	return PendingRequestInput{
		SenderEmail:       p.SenderEmail,
		ReceiverEmail:     p.ReceiverEmail,
		ReceiverBiodataID: p.ReceiverBiodataID,
		ReceiverObjectID:  p.ReceiverObjectID,
		Status:            p.Status,
		SentAt:            p.SentAt,
	}
}
