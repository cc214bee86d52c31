// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound connection-request and
// registration bodies before they reach the backend.
//
// A Validator takes an optional list of field names. When given, only those
// fields are checked, so each endpoint can validate just what it reads.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
