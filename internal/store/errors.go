package store

import "errors"

// Medium errors. The queue store absorbs them; they are visible only to
// code that talks to a [Medium] directly.
var (
	// ErrQuotaExceeded is returned by a bounded medium when a write would
	// exceed its capacity. The write is not applied.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrMediumClosed is returned by any operation on a closed medium.
	ErrMediumClosed = errors.New("storage medium closed")

	// ErrUnknownDriver is returned by [NewMedium] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors of the sqlite medium.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
