// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Roles known to the client. The server may return others.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserStatus is the last known snapshot of a server user record.
//
// Known fields are typed; everything else the server sent is kept in Extra
// so the cached record round-trips without loss.
type UserStatus struct {
	Email           string    `json:"email,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	IsActive        bool      `json:"isActive"`
	Role            string    `json:"role,omitempty"`
	IsGoogleUser    bool      `json:"isGoogleUser"`
	Timestamp       time.Time `json:"timestamp"`

	Extra map[string]json.RawMessage `json:"-"`
}

var userStatusKnownFields = []string{"email", "isEmailVerified", "isActive", "role", "isGoogleUser", "timestamp"}

// MarshalJSON writes the typed fields and merges Extra at the top level.
func (u UserStatus) MarshalJSON() ([]byte, error) {
	type plain UserStatus
	base, err := json.Marshal(plain(u))
	if err != nil {
		return nil, err
	}
	if len(u.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage, len(u.Extra)+len(userStatusKnownFields))
	for k, v := range u.Extra {
		merged[k] = v
	}
	if err = json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

// UnmarshalJSON reads the typed fields and collects unknown ones into Extra.
func (u *UserStatus) UnmarshalJSON(b []byte) error {
	type plain UserStatus
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range userStatusKnownFields {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}

	*u = UserStatus(p)
	return nil
}

// ProvisionalUserStatus is the record granted to an institutional-domain
// identity while the backend is unreachable.
func ProvisionalUserStatus(email string, now time.Time) UserStatus {
	return UserStatus{
		Email:           email,
		IsEmailVerified: true,
		IsActive:        true,
		Role:            RoleUser,
		IsGoogleUser:    true,
		Timestamp:       now,
	}
}

// VerificationSource tells where an email verification was confirmed.
type VerificationSource string

const (
	VerificationSourceProvider VerificationSource = "provider"
	VerificationSourceServer   VerificationSource = "server"
)

// VerificationRecord tracks email verification independently of the user
// status cache: the identity provider can confirm it before the backend
// record exists.
type VerificationRecord struct {
	Email     string             `json:"email"`
	Verified  bool               `json:"verified"`
	Source    VerificationSource `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
}
