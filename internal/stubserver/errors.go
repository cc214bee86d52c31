// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

// Backend errors, mapped to responses in errors_mapper.go.
var (
	ErrInvalidData      = errors.New("invalid data provided")
	ErrRequestExists    = errors.New("request already exists")
	ErrRequestNotFound  = errors.New("request not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrBiodataNotFound  = errors.New("biodata not found")
	ErrDomainRestricted = errors.New("domain restricted")
	ErrUnknownMode      = errors.New("unknown mode")
)
