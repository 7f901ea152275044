// Package notify delivers best-effort push signals to a user's devices
// through an external push relay. Every method returns quickly and never
// blocks account state changes: a failed push is logged by the caller and
// dropped.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/service"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

// Push message type codes understood by clients. The values are part of the
// client protocol and must not be renumbered.
const (
	pushTypeLogOut              = 11
	pushTypeAuthRequest         = 15
	pushTypeAuthRequestResponse = 16
)

// pushMessage is the envelope posted to the relay's send endpoint.
type pushMessage struct {
	UserID   string `json:"user_id,omitempty"`
	DeviceID string `json:"device_id,omitempty"`

	// ExcludedDeviceID names a device that must not receive this message,
	// typically the one that initiated the change.
	ExcludedDeviceID string `json:"excluded_device_id,omitempty"`

	Type    int            `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type deviceRegistration struct {
	UserID    string `json:"user_id"`
	DeviceID  string `json:"device_id"`
	PushToken string `json:"push_token"`
	Type      int    `json:"type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// pushNotifier talks to the relay over HTTP. It caches the relay access
// token and refreshes it shortly before expiry.
type pushNotifier struct {
	client *utils.HTTPClient
	cfg    config.Push
	logger *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewNotifier returns a push relay client, or a no-op implementation when
// push is disabled in configuration.
func NewNotifier(cfg config.Push, logger *logger.Logger) service.Notifier {
	if !cfg.Enabled {
		return &nopNotifier{}
	}

	client := utils.NewHTTPClient()
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &pushNotifier{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (n *pushNotifier) SendLogout(ctx context.Context, user models.User, excludedDeviceID string) error {
	return n.send(ctx, pushMessage{
		UserID:           user.ID,
		ExcludedDeviceID: excludedDeviceID,
		Type:             pushTypeLogOut,
	})
}

func (n *pushNotifier) SendAuthRequestCreated(ctx context.Context, user models.User, request models.AuthRequest) error {
	return n.send(ctx, pushMessage{
		UserID: user.ID,
		Type:   pushTypeAuthRequest,
		Payload: map[string]any{
			"id":        request.ID,
			"device_id": request.RequestDeviceID,
		},
	})
}

func (n *pushNotifier) SendAuthResponse(ctx context.Context, user models.User, request models.AuthRequest) error {
	return n.send(ctx, pushMessage{
		UserID: user.ID,
		Type:   pushTypeAuthRequestResponse,
		Payload: map[string]any{
			"id":        request.ID,
			"device_id": request.RequestDeviceID,
			"approved":  request.Approved != nil && *request.Approved,
		},
	})
}

// SendAnonymousAuthResponse reaches the unauthenticated requesting device:
// it is addressed by device, not by user, so a polling client can stop
// polling the moment the request resolves.
func (n *pushNotifier) SendAnonymousAuthResponse(ctx context.Context, request models.AuthRequest) error {
	return n.send(ctx, pushMessage{
		DeviceID: request.RequestDeviceID,
		Type:     pushTypeAuthRequestResponse,
		Payload: map[string]any{
			"id":       request.ID,
			"approved": request.Approved != nil && *request.Approved,
		},
	})
}

func (n *pushNotifier) RegisterPushDevice(ctx context.Context, user models.User, device models.Device) error {
	if device.PushToken == "" {
		return nil
	}

	token, err := n.relayToken(ctx)
	if err != nil {
		return err
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(deviceRegistration{
			UserID:    user.ID,
			DeviceID:  device.ID,
			PushToken: device.PushToken,
			Type:      int(device.Type),
		}).
		Post(n.cfg.RelayURI + "/push/register")
	if err != nil {
		return fmt.Errorf("push register call failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push register rejected: %s", resp.Status())
	}
	return nil
}

func (n *pushNotifier) UnregisterPushDevice(ctx context.Context, deviceID string) error {
	token, err := n.relayToken(ctx)
	if err != nil {
		return err
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete(n.cfg.RelayURI + "/push/" + deviceID)
	if err != nil {
		return fmt.Errorf("push unregister call failed: %w", err)
	}
	// The relay answers 404 for a device it never saw; nothing to undo.
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("push unregister rejected: %s", resp.Status())
	}
	return nil
}

func (n *pushNotifier) send(ctx context.Context, msg pushMessage) error {
	token, err := n.relayToken(ctx)
	if err != nil {
		return err
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(msg).
		Post(n.cfg.RelayURI + "/push/send")
	if err != nil {
		return fmt.Errorf("push send call failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push send rejected: %s", resp.Status())
	}
	return nil
}

// relayToken returns a valid relay access token, fetching a fresh one when
// the cached token is missing or within a minute of expiry.
func (n *pushNotifier) relayToken(ctx context.Context) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.accessToken != "" && time.Until(n.tokenExpiry) > time.Minute {
		return n.accessToken, nil
	}

	var tr tokenResponse
	resp, err := n.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     n.cfg.InstallationID,
			"client_secret": n.cfg.InstallationKey,
		}).
		SetResult(&tr).
		Post(n.cfg.RelayURI + "/connect/token")
	if err != nil {
		return "", fmt.Errorf("relay token call failed: %w", err)
	}
	if resp.IsError() || tr.AccessToken == "" {
		return "", fmt.Errorf("relay token rejected: %s", resp.Status())
	}

	n.accessToken = tr.AccessToken
	n.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)

	return n.accessToken, nil
}

// nopNotifier satisfies service.Notifier when push is disabled.
type nopNotifier struct{}

func (*nopNotifier) SendLogout(context.Context, models.User, string) error { return nil }

func (*nopNotifier) SendAuthRequestCreated(context.Context, models.User, models.AuthRequest) error {
	return nil
}

func (*nopNotifier) SendAuthResponse(context.Context, models.User, models.AuthRequest) error {
	return nil
}

func (*nopNotifier) SendAnonymousAuthResponse(context.Context, models.AuthRequest) error {
	return nil
}

func (*nopNotifier) RegisterPushDevice(context.Context, models.User, models.Device) error {
	return nil
}

func (*nopNotifier) UnregisterPushDevice(context.Context, string) error { return nil }
