package service

//go:generate mockgen -source=collaborators.go -destination=../mock/collaborators_mock.go -package=mock

import (
	"context"

	"github.com/ndanilkin/go-vault-server/models"
)

// PasswordMutator is the credential authority the rotation coordinator
// consumes: constant-time verification of the current password and the
// single write path for hash, encrypted user key and security stamp.
// AccountService implements it.
type PasswordMutator interface {
	VerifyPassword(user models.User, masterPasswordHash string) bool
	SetPassword(ctx context.Context, user *models.User, newHash, newEncryptedKey string, regenerateStamp bool, staleTokenKinds []string) error
}

// Notifier fans out best-effort signals to a user's other devices. Failures
// are logged by callers and never reverse a committed state change.
type Notifier interface {
	SendLogout(ctx context.Context, user models.User, excludedDeviceID string) error
	SendAuthRequestCreated(ctx context.Context, user models.User, request models.AuthRequest) error
	SendAuthResponse(ctx context.Context, user models.User, request models.AuthRequest) error
	SendAnonymousAuthResponse(ctx context.Context, request models.AuthRequest) error
	RegisterPushDevice(ctx context.Context, user models.User, device models.Device) error
	UnregisterPushDevice(ctx context.Context, deviceID string) error
}

// Mailer delivers outbound account mail. Best effort on every path except
// where a flow's contract explicitly requires working mail.
type Mailer interface {
	SendWelcome(ctx context.Context, address string) error
	SendChangeEmail(ctx context.Context, address, token string) error
	SendPasswordHint(ctx context.Context, address, hint string) error
	SendDeleteAccount(ctx context.Context, address, token string) error
	SendEmailTwoFactorActivation(ctx context.Context, address, token string) error
}

// TxRunner runs fn inside a single database transaction. *store.DB
// implements it; rotation wraps its apply phase in one.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
