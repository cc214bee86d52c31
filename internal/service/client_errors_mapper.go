// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/http"
	"strings"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/app"
	"github.com/fahim1105/seu-matrimony/internal/i18n"
)

// mapAdapterError translates a transport error that has no local substitute
// into a DisplayError. The server message is preferred; the localized
// generic message is the fallback.
func mapAdapterError(err error, tr *i18n.Translator) error {
	if err == nil {
		return nil
	}

	e, ok := adapter.AsError(err)
	if !ok {
		return newDisplayError(ErrUnavailable, tr.T(i18n.ErrorGeneric), err)
	}

	switch e.Kind {
	case adapter.KindTimeout, adapter.KindServerError, adapter.KindNotFound:
		return newDisplayError(ErrUnavailable, tr.T(i18n.ErrorUnavailable), err)
	}

	switch e.Status {
	case http.StatusUnauthorized:
		return newDisplayError(ErrNotAuthorized, messageOr(e, tr, i18n.ErrorUnauthorized), err)
	case http.StatusForbidden:
		return newDisplayError(ErrForbidden, messageOr(e, tr, i18n.ErrorForbidden), err)
	default:
		return newDisplayError(ErrRejected, messageOr(e, tr, i18n.ErrorBadRequest), err)
	}
}

func messageOr(e *adapter.Error, tr *i18n.Translator, key i18n.Key) string {
	if e.Message != "" {
		return e.Message
	}
	return tr.T(key)
}

// isOffline reports whether err leaves the backend's answer unknown or
// unusable: a 404, a 5xx, or no response at all.
func isOffline(err error) bool {
	switch adapter.KindOf(err) {
	case adapter.KindTimeout, adapter.KindServerError, adapter.KindNotFound:
		return true
	default:
		return false
	}
}

// isUnreachable reports a 5xx or a missing response.
func isUnreachable(err error) bool {
	switch adapter.KindOf(err) {
	case adapter.KindTimeout, adapter.KindServerError:
		return true
	default:
		return false
	}
}

func isNotFound(err error) bool {
	return adapter.KindOf(err) == adapter.KindNotFound
}

// isDuplicate reports whether a replay was refused because the backend
// already holds the request. A machine-readable code wins, then 409, then
// a message match on a 400.
func isDuplicate(err error) bool {
	e, ok := adapter.AsError(err)
	if !ok {
		return false
	}

	switch e.Code {
	case app.CodeRequestAlreadyExists, app.CodeDuplicateRequest:
		return true
	}

	switch e.Status {
	case http.StatusConflict:
		return true
	case http.StatusBadRequest:
		msg := strings.ToLower(e.Message)
		for _, marker := range app.DuplicateMessageMarkers {
			if strings.Contains(msg, marker) {
				return true
			}
		}
	}

	return false
}
