package http

import (
	"errors"
	"net/http"

	"github.com/ndanilkin/go-vault-server/internal/service"
	"github.com/ndanilkin/go-vault-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidKdfParameters:    http.StatusBadRequest,
	service.ErrIncompleteRotation:      http.StatusBadRequest,
	service.ErrRegistrationNotAllowed:  http.StatusBadRequest,
	service.ErrEmailChangeNotAllowed:   http.StatusBadRequest,
	service.ErrPasswordHintsDisabled:   http.StatusBadRequest,
	service.ErrNoPasswordHint:          http.StatusBadRequest,
	service.ErrShowPasswordHint:        http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrStateConflict:           http.StatusConflict,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNotFound:           http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service error to its HTTP status. 4xx replies carry the
// sentinel's text so clients can show something actionable; 5xx replies stay
// generic and the detail goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
