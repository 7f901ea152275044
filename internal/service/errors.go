package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed covers both a wrong master password and, on
	// enumeration-sensitive paths, a missing account. The two are never
	// distinguished in error text.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKdfParameters is wrapped with the concrete floor or range
	// that was violated.
	ErrInvalidKdfParameters = errors.New("invalid KDF parameters")

	// ErrIncompleteRotation is wrapped with the entity family whose stored
	// set is not fully covered by the rotation payload.
	ErrIncompleteRotation = errors.New("incomplete rotation payload")

	// ErrStateConflict signals a second transition attempt on an already
	// resolved auth request. The caller must not retry.
	ErrStateConflict = errors.New("state conflict")

	// ErrNotFound is deliberately generic: an entity that does not exist and
	// an entity owned by another user produce the same error.
	ErrNotFound = errors.New("not found")

	ErrRegistrationNotAllowed = errors.New("registration not allowed")
	ErrEmailChangeNotAllowed  = errors.New("email change is not allowed")

	// ErrPasswordHintsDisabled is returned when the server cannot serve
	// password hints without leaking account existence.
	ErrPasswordHintsDisabled = errors.New("this server is not configured to provide password hints")

	// ErrNoPasswordHint is the uniform reply when mail is disabled and the
	// account either does not exist or has no hint stored.
	ErrNoPasswordHint = errors.New("sorry, you have no password hint configured")

	// ErrShowPasswordHint carries the hint itself in the error text. Only
	// produced when the administrator opted into revealing hints.
	ErrShowPasswordHint = errors.New("your password hint is")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
