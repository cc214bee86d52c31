package models

import "encoding/json"

// Envelope is the normalized outcome every command returns to the UI,
// whether it came from the server or was synthesized locally.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// Warning is set on degraded-but-successful outcomes.
	Warning string `json:"warning,omitempty"`
	// Offline is true when the outcome was produced from local state.
	Offline bool `json:"offline,omitempty"`
}

// SendResult is returned by the send-request family.
type SendResult struct {
	Envelope
	InsertedID string `json:"insertedId,omitempty"`
}

// StatusResult is returned by CheckRequestStatus.
type StatusResult struct {
	Envelope
	HasRequest  bool           `json:"hasRequest"`
	Status      *RequestStatus `json:"status"`
	IsInitiator bool           `json:"isInitiator"`
	RequestID   string         `json:"requestId,omitempty"`
}

// UserInfoResult is returned by GetUserInfo. Found is false for the
// "user not found" envelope, which is not an error.
type UserInfoResult struct {
	Envelope
	Found bool       `json:"found"`
	User  UserStatus `json:"user"`
}

// MatchesResult carries the browse listing as raw server documents.
type MatchesResult struct {
	Envelope
	Matches []json.RawMessage `json:"matches"`
}

// RegisterResult is returned by RegisterUser and CompleteRegistration.
type RegisterResult struct {
	Envelope
	PendingSync         bool `json:"pendingSync,omitempty"`
	PendingVerification bool `json:"pendingVerification,omitempty"`
}

// RegistrationInput is the body of the registration endpoints.
type RegistrationInput struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	UID          string `json:"uid,omitempty"`
	PhotoURL     string `json:"photoURL,omitempty"`
	IsGoogleUser bool   `json:"isGoogleUser"`
}

// ServerSendResponse is the success body of the send-request endpoints.
type ServerSendResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

// ServerStatusResponse is the success body of the request-status endpoint.
type ServerStatusResponse struct {
	HasRequest  bool           `json:"hasRequest"`
	Status      *RequestStatus `json:"status"`
	IsInitiator bool           `json:"isInitiator"`
	RequestID   string         `json:"requestId,omitempty"`
}

// ServerMessage is the generic {success, message} body.
type ServerMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
