package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
