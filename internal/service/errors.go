package service

import (
	"errors"
)

// Sentinels carried by [DisplayError]. They classify a failure for the UI
// without exposing transport details.
var (
	// ErrRejected means the backend refused the request as invalid.
	ErrRejected = errors.New("request rejected")
	// ErrNotAuthorized means the credential is missing or expired.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrForbidden means the user may not perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrDomainRestricted means registration was refused for the email domain.
	ErrDomainRestricted = errors.New("domain restricted")
	// ErrUnavailable means the backend could not be reached and no local
	// substitute exists.
	ErrUnavailable = errors.New("service unavailable")
	// ErrReceiverUnresolved means an id-addressed request could not fall back
	// to an email-addressed one.
	ErrReceiverUnresolved = errors.New("receiver email unresolved")
	// ErrRequestUnresolved means a delivered request has no known backend id.
	ErrRequestUnresolved = errors.New("backend request id unresolved")

	// ErrNoSession is returned by session commands before Start.
	ErrNoSession = errors.New("no active session")
	// ErrNoIdentity is returned by Start for an identity without an email.
	ErrNoIdentity = errors.New("identity has no email")
	// ErrIdentitySwitch is returned by Start when a running session is
	// rebound to another account. Stop with logout first.
	ErrIdentitySwitch = errors.New("session bound to another user")
)

// DisplayError is the only error type the fallback client returns. Message is
// ready to be shown to the user as is.
type DisplayError struct {
	Kind    error
	Message string

	cause error
}

func newDisplayError(kind error, message string, cause error) *DisplayError {
	return &DisplayError{Kind: kind, Message: message, cause: cause}
}

func (e *DisplayError) Error() string {
	return e.Message
}

func (e *DisplayError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// AsDisplayError returns the first *DisplayError in err's chain.
func AsDisplayError(err error) (*DisplayError, bool) {
	var e *DisplayError
	ok := errors.As(err, &e)
	return e, ok
}
