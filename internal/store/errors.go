package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when no value is stored for the
	// requested owner and name.
	ErrPreferenceNotFound = errors.New("preference was not found")

	// ErrCookiesUnreadable is returned by the cookie repository when the
	// stored blob cannot be unsealed, typically because the storage key
	// changed.
	ErrCookiesUnreadable = errors.New("stored cookies are unreadable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement
	// fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
