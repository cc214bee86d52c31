// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the backend wire constants shared by the sync client
// and the stub backend.
//
// Code* constants are machine-readable error codes the backend puts in the
// "code" field of an error body. Msg* constants are message strings the stub
// backend writes and the client recognizes.
package app

const (
	// CodeRequestAlreadyExists is returned when a connection request for the
	// same sender/receiver pair is already stored on the backend.
	CodeRequestAlreadyExists = "REQUEST_ALREADY_EXISTS"

	// CodeDuplicateRequest is an older spelling of CodeRequestAlreadyExists.
	CodeDuplicateRequest = "DUPLICATE_REQUEST"

	// CodeDomainRestricted is returned when registration is refused for an
	// email outside the allowed domains.
	CodeDomainRestricted = "DOMAIN_RESTRICTED"
)

const (
	// MsgRequestAlreadyExists is the human-readable duplicate-request message.
	MsgRequestAlreadyExists = "Connection request already exists"

	// MsgRequestAlreadyExistsBn is the Bengali duplicate-request message older
	// deployments send without a code.
	MsgRequestAlreadyExistsBn = "আপনি ইতিমধ্যে এই ব্যক্তিকে অনুরোধ পাঠিয়েছেন"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgServiceUnavailable is written by the stub backend in outage mode.
	MsgServiceUnavailable = "service unavailable"

	// MsgNotFound is written for routes a deployment does not serve.
	MsgNotFound = "not found"

	// MsgUserNotFound is returned when no user record exists for an email.
	MsgUserNotFound = "user not found"

	// MsgRequestNotFound is returned when a cancel targets no stored request.
	MsgRequestNotFound = "request not found"

	// MsgDomainRestricted is returned with CodeDomainRestricted.
	MsgDomainRestricted = "registration is restricted to institutional emails"

	// MsgUnauthorized is returned when the bearer credential is missing.
	MsgUnauthorized = "unauthorized"
)

// DuplicateMessageMarkers are message fragments that identify a duplicate
// request in a 400 body without a machine-readable code.
var DuplicateMessageMarkers = []string{
	"already exists",
	"already sent",
	"ইতিমধ্যে",
}
