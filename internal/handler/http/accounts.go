package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("registration failed")
		writeError(w, err)
		return
	}

	log.Info().Str("user", user.ID).Msg("account registered")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) prelogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	kdf := h.services.AccountService.Prelogin(ctx, req.Email)
	utils.WriteJSON(w, kdf, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AccountService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Info().Str("user", user.ID).Str("device", req.DeviceID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, struct {
		Key        string     `json:"key"`
		PrivateKey string     `json:"private_key"`
		Kdf        models.Kdf `json:"kdf"`
	}{
		Key:        user.EncryptedKey,
		PrivateKey: user.PrivateKey,
		Kdf:        user.Kdf,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, userID, deviceID, req); err != nil {
		log.Err(err).Msg("password change failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) changeKdf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	var req models.ChangeKdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ChangeKdf(ctx, userID, deviceID, req); err != nil {
		log.Err(err).Msg("kdf change failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) rotateKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	var payload models.RotationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RotationService.RotateAccountKeys(ctx, userID, deviceID, payload); err != nil {
		log.Err(err).Msg("key rotation failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) securityStamp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req struct {
		MasterPasswordHash string `json:"master_password_hash"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.SetSecurityStamp(ctx, userID, req.MasterPasswordHash); err != nil {
		log.Err(err).Msg("security stamp reset failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) setKeyPair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.KeyPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.SetKeyPair(ctx, userID, req); err != nil {
		log.Err(err).Msg("keypair upload failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) beginEmailChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.EmailChangeBeginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.BeginEmailChange(ctx, userID, req); err != nil {
		log.Err(err).Msg("email change start failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) confirmEmailChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	var req models.EmailChangeConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ConfirmEmailChange(ctx, userID, deviceID, req); err != nil {
		log.Err(err).Msg("email change confirmation failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) apiKey(w http.ResponseWriter, r *http.Request) {
	h.serveAPIKey(w, r, h.services.AccountService.GetAPIKey)
}

func (h *Handler) rotateAPIKey(w http.ResponseWriter, r *http.Request) {
	h.serveAPIKey(w, r, h.services.AccountService.RotateAPIKey)
}

func (h *Handler) serveAPIKey(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, userID, masterPasswordHash string) (string, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req struct {
		MasterPasswordHash string `json:"master_password_hash"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	apiKey, err := fetch(ctx, userID, req.MasterPasswordHash)
	if err != nil {
		log.Err(err).Msg("api key request failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, struct {
		APIKey string `json:"api_key"`
	}{APIKey: apiKey}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req struct {
		MasterPasswordHash string `json:"master_password_hash"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.DeleteAccount(ctx, userID, req.MasterPasswordHash); err != nil {
		log.Err(err).Msg("account deletion failed")
		writeError(w, err)
		return
	}

	log.Info().Str("user", userID).Msg("account deleted")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) requestDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.RequestDeleteAccount(ctx, req.Email); err != nil {
		log.Err(err).Msg("account deletion request failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteAccountWithToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.DeleteAccountWithToken(ctx, req.Token); err != nil {
		log.Err(err).Msg("token account deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) passwordHint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.RequestPasswordHint(ctx, req.Email); err != nil {
		log.Err(err).Msg("password hint request failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
