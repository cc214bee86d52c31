package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels exposed through [Error.Unwrap] so callers can match with
// [errors.Is] without inspecting status codes.
var (
	ErrNetwork           = errors.New("backend unreachable")
	ErrServerUnavailable = errors.New("backend server error")
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrClientError       = errors.New("client error")
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindUnknown is returned by [KindOf] for errors that did not come from
	// this package.
	KindUnknown Kind = iota
	// KindTimeout means no response was received: dial failure, timeout or
	// cancelled context.
	KindTimeout
	// KindServerError is any 5xx response.
	KindServerError
	// KindNotFound is a 404 response.
	KindNotFound
	// KindClientError is any other 4xx response.
	KindClientError
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindServerError:
		return "server_error"
	case KindNotFound:
		return "not_found"
	case KindClientError:
		return "client_error"
	default:
		return "unknown"
	}
}

// Error is the single failure type produced by [ServerAdapter]
// implementations.
type Error struct {
	Kind Kind
	// Status is the HTTP status code, 0 for KindTimeout.
	Status int
	// Message is the server-provided human-readable message, if any.
	Message string
	// Code is the server-provided machine-readable code, if any.
	Code string

	cause error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.cause)
		}
		return e.Kind.String()
	}
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Unwrap returns the sentinel for the failure class and the underlying
// transport error, if any.
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindTimeout:
		return ErrNetwork
	case KindServerError:
		return ErrServerUnavailable
	case KindNotFound:
		return ErrNotFound
	}

	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrClientError
	}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func kindForStatus(status int) Kind {
	switch {
	case status >= http.StatusInternalServerError:
		return KindServerError
	case status == http.StatusNotFound:
		return KindNotFound
	default:
		return KindClientError
	}
}
