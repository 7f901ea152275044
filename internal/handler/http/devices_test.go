package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndanilkin/go-vault-server/internal/service"
	"github.com/ndanilkin/go-vault-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock DeviceService
// ─────────────────────────────────────────────

type mockDeviceService struct {
	listFn         func(ctx context.Context, userID string) ([]models.Device, error)
	getFn          func(ctx context.Context, userID, deviceID string) (models.Device, error)
	isKnownFn      func(ctx context.Context, email, deviceID string) (bool, error)
	registerPushFn func(ctx context.Context, userID, deviceID, pushToken string) error
	clearPushFn    func(ctx context.Context, deviceID string) error
}

func (m *mockDeviceService) ListDevices(ctx context.Context, userID string) ([]models.Device, error) {
	return m.listFn(ctx, userID)
}

func (m *mockDeviceService) GetDevice(ctx context.Context, userID, deviceID string) (models.Device, error) {
	return m.getFn(ctx, userID, deviceID)
}

func (m *mockDeviceService) IsKnownDevice(ctx context.Context, email, deviceID string) (bool, error) {
	return m.isKnownFn(ctx, email, deviceID)
}

func (m *mockDeviceService) RegisterPushToken(ctx context.Context, userID, deviceID, pushToken string) error {
	return m.registerPushFn(ctx, userID, deviceID, pushToken)
}

func (m *mockDeviceService) ClearPushToken(ctx context.Context, deviceID string) error {
	return m.clearPushFn(ctx, deviceID)
}

// ─────────────────────────────────────────────
// listing and lookup
// ─────────────────────────────────────────────

func TestListDevices(t *testing.T) {
	devices := &mockDeviceService{
		listFn: func(_ context.Context, userID string) ([]models.Device, error) {
			assert.Equal(t, "user-1", userID)
			return []models.Device{{ID: "dev-1"}, {ID: "dev-2"}}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{DeviceService: devices})
	rec := httptest.NewRecorder()

	h.listDevices(rec, authedRequest(http.MethodGet, "/api/devices", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Device
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestGetDevice_NotFound(t *testing.T) {
	devices := &mockDeviceService{
		getFn: func(context.Context, string, string) (models.Device, error) {
			return models.Device{}, service.ErrNotFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{DeviceService: devices})
	req := withURLParam(authedRequest(http.MethodGet, "/api/devices/dev-9", ""), "id", "dev-9")
	rec := httptest.NewRecorder()

	h.getDevice(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// known-device probe
// ─────────────────────────────────────────────

// TestKnownDevice verifies the anonymous probe reads its identifiers from
// headers and replies with a bare boolean.
func TestKnownDevice(t *testing.T) {
	devices := &mockDeviceService{
		isKnownFn: func(_ context.Context, email, deviceID string) (bool, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "dev-1", deviceID)
			return true, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{DeviceService: devices})
	req := httptest.NewRequest(http.MethodGet, "/api/devices/knowndevice", nil)
	req.Header.Set("X-Request-Email", "alice@example.com")
	req.Header.Set("X-Device-Identifier", "dev-1")
	rec := httptest.NewRecorder()

	h.knownDevice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())
}

// ─────────────────────────────────────────────
// push token
// ─────────────────────────────────────────────

func TestRegisterPushToken(t *testing.T) {
	devices := &mockDeviceService{
		registerPushFn: func(_ context.Context, userID, deviceID, pushToken string) error {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "dev-1", deviceID)
			assert.Equal(t, "fcm-token", pushToken)
			return nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{DeviceService: devices})
	req := withURLParam(authedRequest(http.MethodPut, "/api/devices/dev-1/token",
		`{"push_token":"fcm-token"}`), "id", "dev-1")
	rec := httptest.NewRecorder()

	h.registerPushToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearPushToken(t *testing.T) {
	cleared := ""
	devices := &mockDeviceService{
		clearPushFn: func(_ context.Context, deviceID string) error {
			cleared = deviceID
			return nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{DeviceService: devices})
	req := withURLParam(authedRequest(http.MethodDelete, "/api/devices/dev-1/token", ""), "id", "dev-1")
	rec := httptest.NewRecorder()

	h.clearPushToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev-1", cleared)
}
