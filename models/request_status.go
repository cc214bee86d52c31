package models

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// RequestKeyDelimiter joins sender and receiver in the serialized key of the
// "requestStatus" table.
//
// An email local part may contain '_', so the serialized form is not
// injective for every address pair. Keys are only ever built from a
// RequestKey and never parsed back.
const RequestKeyDelimiter = "_"

// RequestKey identifies a request-status entry by its participants.
type RequestKey struct {
	Sender   string
	Receiver string
}

// NewRequestKey builds a key from normalized emails.
func NewRequestKey(sender, receiver string) RequestKey {
	return RequestKey{Sender: NormalizeEmail(sender), Receiver: NormalizeEmail(receiver)}
}

// String is the storage-boundary form "<sender>_<receiver>".
func (k RequestKey) String() string {
	return k.Sender + RequestKeyDelimiter + k.Receiver
}

// Involves reports whether email is one of the participants.
func (k RequestKey) Involves(email string) bool {
	email = NormalizeEmail(email)
	return k.Sender == email || k.Receiver == email
}

// NormalizeEmail trims, NFC-normalizes and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(email)))
}

// RequestStatusEntry is the cached request state for a sender/receiver pair.
// It may drift from the server until the next reconciliation.
type RequestStatusEntry struct {
	HasRequest bool           `json:"hasRequest"`
	Status     *RequestStatus `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
	Synced     bool           `json:"synced"`
}

// NoRequestStatus is the default returned when nothing is cached.
func NoRequestStatus() RequestStatusEntry {
	return RequestStatusEntry{HasRequest: false, Status: nil}
}
