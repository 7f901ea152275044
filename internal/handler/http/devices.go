package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/utils"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	devices, err := h.services.DeviceService.ListDevices(ctx, userID)
	if err != nil {
		log.Err(err).Msg("device listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, devices, http.StatusOK)
}

func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	device, err := h.services.DeviceService.GetDevice(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("device lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, device, http.StatusOK)
}

// knownDevice is an anonymous probe used by clients before login to decide
// whether to warn about a new device. Email and device identifier come from
// headers, matching what login clients already send.
func (h *Handler) knownDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	known, err := h.services.DeviceService.IsKnownDevice(ctx, r.Header.Get("X-Request-Email"), r.Header.Get("X-Device-Identifier"))
	if err != nil {
		log.Err(err).Msg("known device probe failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, known, http.StatusOK)
}

func (h *Handler) registerPushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req struct {
		PushToken string `json:"push_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DeviceService.RegisterPushToken(ctx, userID, chi.URLParam(r, "id"), req.PushToken); err != nil {
		log.Err(err).Msg("push token registration failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) clearPushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.DeviceService.ClearPushToken(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("push token removal failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
