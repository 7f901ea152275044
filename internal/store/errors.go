package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because the email address is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when a queried entity does not exist or is not
	// owned by the requesting user. Repositories do not distinguish the two
	// cases, so nothing about other users' data leaks through error text.
	ErrNotFound = errors.New("record not found")
)
