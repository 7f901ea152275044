package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/accounts/register", h.register)
		r.Post("/api/accounts/prelogin", h.prelogin)
		r.Post("/api/accounts/login", h.login)
		r.Post("/api/accounts/password-hint", h.passwordHint)
		r.Post("/api/accounts/delete-recover", h.requestDeleteAccount)
		r.Post("/api/accounts/delete-recover-token", h.deleteAccountWithToken)

		r.Post("/api/auth-requests", h.createAuthRequest)
		r.Get("/api/auth-requests/{id}/response", h.pollAuthRequest)

		r.Get("/api/devices/knowndevice", h.knownDevice)
	})

	// routes behind a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/accounts/password", h.changePassword)
		r.Post("/api/accounts/kdf", h.changeKdf)
		r.Post("/api/accounts/key-management/rotate", h.rotateKeys)
		r.Post("/api/accounts/security-stamp", h.securityStamp)
		r.Post("/api/accounts/keys", h.setKeyPair)
		r.Post("/api/accounts/email-token", h.beginEmailChange)
		r.Post("/api/accounts/email", h.confirmEmailChange)
		r.Post("/api/accounts/api-key", h.apiKey)
		r.Post("/api/accounts/rotate-api-key", h.rotateAPIKey)
		r.Delete("/api/accounts", h.deleteAccount)

		r.Get("/api/auth-requests", h.listPendingAuthRequests)
		r.Get("/api/auth-requests/{id}", h.getAuthRequest)
		r.Put("/api/auth-requests/{id}", h.respondAuthRequest)

		r.Get("/api/devices", h.listDevices)
		r.Get("/api/devices/{id}", h.getDevice)
		r.Put("/api/devices/{id}/token", h.registerPushToken)
		r.Delete("/api/devices/{id}/token", h.clearPushToken)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
