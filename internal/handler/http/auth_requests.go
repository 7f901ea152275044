package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

// createAuthRequest opens a device-approval request. The caller is not
// authenticated yet; the observed client info is recorded on the request and
// re-checked on every anonymous poll.
func (h *Handler) createAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	authRequest, err := h.services.AuthRequestService.CreateAuthRequest(ctx, req, clientInfo(r))
	if err != nil {
		log.Err(err).Msg("auth request creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, authRequest, http.StatusOK)
}

func (h *Handler) getAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	authRequest, err := h.services.AuthRequestService.GetAuthRequest(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		log.Err(err).Msg("auth request lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, authRequest, http.StatusOK)
}

func (h *Handler) respondAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	var resp models.AuthRequestResponse
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	authRequest, err := h.services.AuthRequestService.RespondAuthRequest(ctx, chi.URLParam(r, "id"), userID, deviceID, resp, clientInfo(r))
	if err != nil {
		log.Err(err).Msg("auth request response failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, authRequest, http.StatusOK)
}

// pollAuthRequest is the anonymous status poll. The access code the requester
// chose at creation stands in for authentication; any mismatch reads as not
// found.
func (h *Handler) pollAuthRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authRequest, err := h.services.AuthRequestService.GetAuthRequestByCode(ctx, chi.URLParam(r, "id"), r.URL.Query().Get("code"), clientInfo(r))
	if err != nil {
		log.Err(err).Msg("auth request poll failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, authRequest, http.StatusOK)
}

func (h *Handler) listPendingAuthRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	authRequests, err := h.services.AuthRequestService.ListPendingAuthRequests(ctx, userID)
	if err != nil {
		log.Err(err).Msg("auth request listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, authRequests, http.StatusOK)
}
