package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilkin/go-vault-server/internal/service"
	"github.com/ndanilkin/go-vault-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthRequestService
// ─────────────────────────────────────────────

type mockAuthRequestService struct {
	createFn      func(ctx context.Context, req models.AuthRequestCreate, info models.ClientInfo) (models.AuthRequest, error)
	respondFn     func(ctx context.Context, requestID, userID, respondingDeviceID string, resp models.AuthRequestResponse, info models.ClientInfo) (models.AuthRequest, error)
	getFn         func(ctx context.Context, requestID, userID string) (models.AuthRequest, error)
	getByCodeFn   func(ctx context.Context, requestID, accessCode string, info models.ClientInfo) (models.AuthRequest, error)
	listPendingFn func(ctx context.Context, userID string) ([]models.AuthRequest, error)
}

func (m *mockAuthRequestService) CreateAuthRequest(ctx context.Context, req models.AuthRequestCreate, info models.ClientInfo) (models.AuthRequest, error) {
	return m.createFn(ctx, req, info)
}

func (m *mockAuthRequestService) RespondAuthRequest(ctx context.Context, requestID, userID, respondingDeviceID string, resp models.AuthRequestResponse, info models.ClientInfo) (models.AuthRequest, error) {
	return m.respondFn(ctx, requestID, userID, respondingDeviceID, resp, info)
}

func (m *mockAuthRequestService) GetAuthRequest(ctx context.Context, requestID, userID string) (models.AuthRequest, error) {
	return m.getFn(ctx, requestID, userID)
}

func (m *mockAuthRequestService) GetAuthRequestByCode(ctx context.Context, requestID, accessCode string, info models.ClientInfo) (models.AuthRequest, error) {
	return m.getByCodeFn(ctx, requestID, accessCode, info)
}

func (m *mockAuthRequestService) ListPendingAuthRequests(ctx context.Context, userID string) ([]models.AuthRequest, error) {
	return m.listPendingFn(ctx, userID)
}

func (m *mockAuthRequestService) PurgeExpiredAuthRequests(context.Context) (int64, error) {
	return 0, nil
}

// withURLParam injects a chi route parameter into the request context, the
// way the router would when dispatching.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createAuthRequest
// ─────────────────────────────────────────────

// TestCreateAuthRequest_RecordsClientInfo verifies the handler passes the
// observed device type and IP alongside the request body.
func TestCreateAuthRequest_RecordsClientInfo(t *testing.T) {
	var gotInfo models.ClientInfo
	requests := &mockAuthRequestService{
		createFn: func(_ context.Context, req models.AuthRequestCreate, info models.ClientInfo) (models.AuthRequest, error) {
			gotInfo = info
			assert.Equal(t, "alice@example.com", req.Email)
			return models.AuthRequest{ID: "req-1", RequestDeviceID: req.DeviceID}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	body := jsonBody(t, models.AuthRequestCreate{
		Email:      "alice@example.com",
		DeviceID:   "dev-new",
		AccessCode: "access-code-1",
		PublicKey:  "ephemeral-pub",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth-requests", strings.NewReader(body))
	req.Header.Set("Device-Type", "0")
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()

	h.createAuthRequest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DeviceTypeAndroid, gotInfo.DeviceType)
	assert.Equal(t, "203.0.113.7", gotInfo.IP)

	var created models.AuthRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "req-1", created.ID)
}

// TestCreateAuthRequest_UnknownEmail verifies that any creation mismatch
// surfaces as a plain 404.
func TestCreateAuthRequest_UnknownEmail(t *testing.T) {
	requests := &mockAuthRequestService{
		createFn: func(context.Context, models.AuthRequestCreate, models.ClientInfo) (models.AuthRequest, error) {
			return models.AuthRequest{}, service.ErrNotFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	body := jsonBody(t, models.AuthRequestCreate{Email: "nobody@example.com", DeviceID: "dev-new"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createAuthRequest(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// respondAuthRequest
// ─────────────────────────────────────────────

func TestRespondAuthRequest_Approve(t *testing.T) {
	approved := true
	requests := &mockAuthRequestService{
		respondFn: func(_ context.Context, requestID, userID, respondingDeviceID string, resp models.AuthRequestResponse, _ models.ClientInfo) (models.AuthRequest, error) {
			assert.Equal(t, "req-1", requestID)
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "dev-1", respondingDeviceID)
			assert.True(t, resp.Approved)
			return models.AuthRequest{ID: requestID, Approved: &approved, EncKey: resp.EncKey}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	body := jsonBody(t, models.AuthRequestResponse{
		DeviceID: "dev-1",
		Approved: true,
		EncKey:   "4.encrypted-user-key",
	})
	req := withURLParam(authedRequest(http.MethodPut, "/api/auth-requests/req-1", body), "id", "req-1")
	rec := httptest.NewRecorder()

	h.respondAuthRequest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "4.encrypted-user-key")
}

func TestRespondAuthRequest_AlreadyResolved(t *testing.T) {
	requests := &mockAuthRequestService{
		respondFn: func(context.Context, string, string, string, models.AuthRequestResponse, models.ClientInfo) (models.AuthRequest, error) {
			return models.AuthRequest{}, service.ErrStateConflict
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	req := withURLParam(authedRequest(http.MethodPut, "/api/auth-requests/req-1", `{}`), "id", "req-1")
	rec := httptest.NewRecorder()

	h.respondAuthRequest(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// pollAuthRequest
// ─────────────────────────────────────────────

func TestPollAuthRequest_PassesAccessCode(t *testing.T) {
	requests := &mockAuthRequestService{
		getByCodeFn: func(_ context.Context, requestID, accessCode string, info models.ClientInfo) (models.AuthRequest, error) {
			assert.Equal(t, "req-1", requestID)
			assert.Equal(t, "access-code-1", accessCode)
			assert.Equal(t, "203.0.113.7", info.IP)
			return models.AuthRequest{ID: requestID}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	req := httptest.NewRequest(http.MethodGet, "/api/auth-requests/req-1/response?code=access-code-1", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	req = withURLParam(req, "id", "req-1")
	rec := httptest.NewRecorder()

	h.pollAuthRequest(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestPollAuthRequest_MismatchIsBare404 verifies the anonymous poll never
// explains what failed.
func TestPollAuthRequest_MismatchIsBare404(t *testing.T) {
	requests := &mockAuthRequestService{
		getByCodeFn: func(context.Context, string, string, models.ClientInfo) (models.AuthRequest, error) {
			return models.AuthRequest{}, service.ErrNotFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/auth-requests/req-1/response?code=wrong", nil), "id", "req-1")
	rec := httptest.NewRecorder()

	h.pollAuthRequest(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrNotFound.Error(), strings.TrimSpace(rec.Body.String()))
}

// ─────────────────────────────────────────────
// listing
// ─────────────────────────────────────────────

func TestListPendingAuthRequests(t *testing.T) {
	requests := &mockAuthRequestService{
		listPendingFn: func(_ context.Context, userID string) ([]models.AuthRequest, error) {
			assert.Equal(t, "user-1", userID)
			return []models.AuthRequest{{ID: "req-1"}, {ID: "req-2"}}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	rec := httptest.NewRecorder()

	h.listPendingAuthRequests(rec, authedRequest(http.MethodGet, "/api/auth-requests", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.AuthRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestGetAuthRequest_NotOwned(t *testing.T) {
	requests := &mockAuthRequestService{
		getFn: func(context.Context, string, string) (models.AuthRequest, error) {
			return models.AuthRequest{}, service.ErrNotFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthRequestService: requests})
	req := withURLParam(authedRequest(http.MethodGet, "/api/auth-requests/req-9", ""), "id", "req-9")
	rec := httptest.NewRecorder()

	h.getAuthRequest(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
