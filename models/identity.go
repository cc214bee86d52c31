// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProviderGoogle is the sign-in provider id of federated Google identities.
const ProviderGoogle = "google.com"

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UID   string
	Email string
	// EmailVerified is the provider's own verification flag.
	EmailVerified bool
	// Provider is the sign-in provider id ("password", "google.com", ...).
	Provider string
	// Token is the bearer credential attached to outbound requests.
	Token string
}

// IsFederated reports whether the identity was asserted by an external
// provider and can be treated as pre-verified.
func (i Identity) IsFederated() bool {
	return i.Provider == ProviderGoogle
}

// SameUser reports whether other refers to the same account.
func (i Identity) SameUser(other Identity) bool {
	if i.UID != "" && other.UID != "" {
		return i.UID == other.UID
	}
	return NormalizeEmail(i.Email) == NormalizeEmail(other.Email)
}
