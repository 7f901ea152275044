package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRelay records what the notifier sends and serves tokens.
type fakeRelay struct {
	server *httptest.Server

	tokenCalls int
	sent       []pushMessage
	registered []deviceRegistration
	deleted    []string
}

func newFakeRelay(t *testing.T) *fakeRelay {
	t.Helper()
	relay := &fakeRelay{}

	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		relay.tokenCalls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "inst-id", r.FormValue("client_id"))
		assert.Equal(t, "inst-key", r.FormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "relay-token", ExpiresIn: 3600})
	})
	mux.HandleFunc("/push/send", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer relay-token", r.Header.Get("Authorization"))
		var msg pushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		relay.sent = append(relay.sent, msg)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/push/register", func(w http.ResponseWriter, r *http.Request) {
		var reg deviceRegistration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		relay.registered = append(relay.registered, reg)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/push/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		relay.deleted = append(relay.deleted, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	relay.server = httptest.NewServer(mux)
	t.Cleanup(relay.server.Close)
	return relay
}

func newTestNotifier(relay *fakeRelay) *pushNotifier {
	n := NewNotifier(config.Push{
		Enabled:         true,
		RelayURI:        relay.server.URL,
		InstallationID:  "inst-id",
		InstallationKey: "inst-key",
		RequestTimeout:  5 * time.Second,
	}, logger.Nop())
	return n.(*pushNotifier)
}

func TestPushNotifier_SendLogout_CarriesExcludedDevice(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	err := n.SendLogout(context.Background(), models.User{ID: "user-1"}, "dev-1")

	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "user-1", relay.sent[0].UserID)
	assert.Equal(t, "dev-1", relay.sent[0].ExcludedDeviceID)
	assert.Equal(t, pushTypeLogOut, relay.sent[0].Type)
}

func TestPushNotifier_TokenIsCachedAcrossCalls(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	require.NoError(t, n.SendLogout(context.Background(), models.User{ID: "user-1"}, ""))
	require.NoError(t, n.SendLogout(context.Background(), models.User{ID: "user-1"}, ""))

	assert.Equal(t, 1, relay.tokenCalls)
	assert.Len(t, relay.sent, 2)
}

func TestPushNotifier_SendAnonymousAuthResponse_AddressedByDevice(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	approved := true
	err := n.SendAnonymousAuthResponse(context.Background(), models.AuthRequest{
		ID:              "req-1",
		RequestDeviceID: "dev-new",
		Approved:        &approved,
	})

	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Empty(t, relay.sent[0].UserID)
	assert.Equal(t, "dev-new", relay.sent[0].DeviceID)
	assert.Equal(t, pushTypeAuthRequestResponse, relay.sent[0].Type)
	assert.Equal(t, true, relay.sent[0].Payload["approved"])
}

func TestPushNotifier_RegisterPushDevice(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	err := n.RegisterPushDevice(context.Background(),
		models.User{ID: "user-1"},
		models.Device{ID: "dev-1", Type: models.DeviceTypeAndroid, PushToken: "fcm-token"})

	require.NoError(t, err)
	require.Len(t, relay.registered, 1)
	assert.Equal(t, "fcm-token", relay.registered[0].PushToken)
}

func TestPushNotifier_RegisterPushDevice_NoTokenIsNoop(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	err := n.RegisterPushDevice(context.Background(), models.User{ID: "user-1"}, models.Device{ID: "dev-1"})

	require.NoError(t, err)
	assert.Zero(t, relay.tokenCalls, "a device without a push token must not touch the relay")
}

func TestPushNotifier_UnregisterPushDevice(t *testing.T) {
	relay := newFakeRelay(t)
	n := newTestNotifier(relay)

	err := n.UnregisterPushDevice(context.Background(), "dev-1")

	require.NoError(t, err)
	require.Len(t, relay.deleted, 1)
	assert.Equal(t, "/push/dev-1", relay.deleted[0])
}

func TestNewNotifier_DisabledIsNop(t *testing.T) {
	n := NewNotifier(config.Push{Enabled: false}, logger.Nop())

	_, isNop := n.(*nopNotifier)
	assert.True(t, isNop)
	require.NoError(t, n.SendLogout(context.Background(), models.User{ID: "user-1"}, ""))
}
