package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/ndanilkin/go-vault-server/models"
)

// UserRepository is the data-access surface for account records. Deleting a
// user cascades to every owned entity at the schema level.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id string) error
}

// DeviceRepository manages client installations bound to accounts.
type DeviceRepository interface {
	FindDeviceByIDAndUser(ctx context.Context, deviceID, userID string) (models.Device, error)
	FindDevicesByUser(ctx context.Context, userID string) ([]models.Device, error)
	SaveDevice(ctx context.Context, device models.Device) error
	DeleteDevicesByUser(ctx context.Context, userID string) error
	ClearPushToken(ctx context.Context, deviceID string) error
}

// AuthRequestRepository manages passwordless device-approval records.
type AuthRequestRepository interface {
	CreateAuthRequest(ctx context.Context, request models.AuthRequest) (models.AuthRequest, error)
	FindAuthRequestByID(ctx context.Context, id string) (models.AuthRequest, error)
	FindAuthRequestByIDAndUser(ctx context.Context, id, userID string) (models.AuthRequest, error)
	FindAuthRequestsByUser(ctx context.Context, userID string) ([]models.AuthRequest, error)
	SaveAuthRequest(ctx context.Context, request models.AuthRequest) error
	DeleteAuthRequest(ctx context.Context, id string) error
	DeleteExpiredAuthRequests(ctx context.Context, cutoff time.Time) (int64, error)
}

// VaultRepository reads and rewrites the per-user encrypted vault entities
// touched by key rotation: ciphers, folders and sends. The save methods
// update only the ciphertext columns; item creation and deletion live in the
// vault item surface outside the account-security core.
type VaultRepository interface {
	FindCiphersOwnedByUser(ctx context.Context, userID string) ([]models.Cipher, error)
	FindFoldersByUser(ctx context.Context, userID string) ([]models.Folder, error)
	FindSendsByUser(ctx context.Context, userID string) ([]models.Send, error)
	SaveCipherData(ctx context.Context, cipher models.Cipher) error
	SaveFolderName(ctx context.Context, folder models.Folder) error
	SaveSendData(ctx context.Context, send models.Send) error
}

// OrgRepository covers the organization-side key material participating in
// rotation, plus the single policy check the account core consumes.
type OrgRepository interface {
	FindEmergencyAccessByGrantor(ctx context.Context, grantorID string) ([]models.EmergencyAccess, error)
	SaveEmergencyAccessKey(ctx context.Context, grant models.EmergencyAccess) error
	FindMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error)
	SaveMembershipResetKey(ctx context.Context, membership models.Membership) error
	IsPolicyEnabledForMember(ctx context.Context, membershipID string, policy models.OrgPolicyType) (bool, error)
}

// EventRepository appends security events to the audit log.
type EventRepository interface {
	LogUserEvent(ctx context.Context, eventType int, userID string, deviceType models.DeviceType, ip string) error
}
