package service

import (
	"context"

	"github.com/ndanilkin/go-vault-server/models"
)

// AccountService owns every mutation of a user's credentials: registration,
// login, password and KDF changes, email change, API key, deletion and the
// password-hint flow.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Prelogin(ctx context.Context, email string) models.Kdf
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	VerifyPassword(user models.User, masterPasswordHash string) bool
	SetPassword(ctx context.Context, user *models.User, newHash, newEncryptedKey string, regenerateStamp bool, staleTokenKinds []string) error

	ChangePassword(ctx context.Context, userID, deviceID string, req models.ChangePasswordRequest) error
	ChangeKdf(ctx context.Context, userID, deviceID string, req models.ChangeKdfRequest) error
	SetSecurityStamp(ctx context.Context, userID, masterPasswordHash string) error
	SetKeyPair(ctx context.Context, userID string, req models.KeyPairRequest) error

	BeginEmailChange(ctx context.Context, userID string, req models.EmailChangeBeginRequest) error
	ConfirmEmailChange(ctx context.Context, userID, deviceID string, req models.EmailChangeConfirmRequest) error

	GetAPIKey(ctx context.Context, userID, masterPasswordHash string) (string, error)
	RotateAPIKey(ctx context.Context, userID, masterPasswordHash string) (string, error)

	DeleteAccount(ctx context.Context, userID, masterPasswordHash string) error
	RequestDeleteAccount(ctx context.Context, email string) error
	DeleteAccountWithToken(ctx context.Context, tokenString string) error

	RequestPasswordHint(ctx context.Context, email string) error

	CreateToken(ctx context.Context, user models.User, deviceID, kind string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	AuthenticateToken(ctx context.Context, tokenString, wantKind string) (models.User, models.Token, error)
}

// RotationService validates and applies a full-account key rotation.
type RotationService interface {
	RotateAccountKeys(ctx context.Context, userID, deviceID string, payload models.RotationPayload) error
}

// AuthRequestService runs the passwordless device-approval state machine.
type AuthRequestService interface {
	CreateAuthRequest(ctx context.Context, req models.AuthRequestCreate, info models.ClientInfo) (models.AuthRequest, error)
	RespondAuthRequest(ctx context.Context, requestID, userID, respondingDeviceID string, resp models.AuthRequestResponse, info models.ClientInfo) (models.AuthRequest, error)
	GetAuthRequest(ctx context.Context, requestID, userID string) (models.AuthRequest, error)
	GetAuthRequestByCode(ctx context.Context, requestID, accessCode string, info models.ClientInfo) (models.AuthRequest, error)
	ListPendingAuthRequests(ctx context.Context, userID string) ([]models.AuthRequest, error)
	PurgeExpiredAuthRequests(ctx context.Context) (int64, error)
}

// DeviceService manages the device registry of an account.
type DeviceService interface {
	ListDevices(ctx context.Context, userID string) ([]models.Device, error)
	GetDevice(ctx context.Context, userID, deviceID string) (models.Device, error)
	IsKnownDevice(ctx context.Context, email, deviceID string) (bool, error)
	RegisterPushToken(ctx context.Context, userID, deviceID, pushToken string) error
	ClearPushToken(ctx context.Context, deviceID string) error
}

