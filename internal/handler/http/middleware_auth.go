package http

import (
	"context"
	"net/http"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

// auth enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it through [service.AccountService.AuthenticateToken], which also checks
// the token's security stamp against the account's current one. On success
// the account UUID and the issuing device identifier are stored in the
// request context under [utils.UserIDCtxKey] and [utils.DeviceIDCtxKey].
//
// Every failure answers HTTP 401 without detail: a missing header, a
// malformed token, an expired one and a stale stamp must all look the same
// to a prober.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, token, err := h.services.AccountService.AuthenticateToken(ctx, tokenString, models.TokenKindSession)
		if err != nil {
			log.Warn().Err(err).Msg("session token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		ctx = context.WithValue(ctx, utils.DeviceIDCtxKey, token.Claims.DeviceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
