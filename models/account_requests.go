package models

// Request payloads consumed by the account-security services. Handlers decode
// transport bodies into these; services never read the HTTP layer directly.

// ClientInfo is what the server observed about the calling client. It is
// recorded on auth requests at creation and re-checked on anonymous polls.
type ClientInfo struct {
	DeviceType DeviceType
	IP         string
}

// RegisterRequest creates a new account. Kdf is optional; nil selects the
// defaults. The keypair fields may be empty for clients that upload keys
// later via SetKeyPair.
type RegisterRequest struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	MasterPasswordHash string `json:"master_password_hash"`
	MasterPasswordHint string `json:"master_password_hint,omitempty"`

	Kdf *Kdf `json:"kdf,omitempty"`

	// EncryptedKey is the user key encrypted under the master key.
	EncryptedKey string `json:"key"`

	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`

	// OrganizationUserID names the membership an invited registration came
	// through. It gates the email second-factor check for orgs that enforce
	// the two-factor policy on their members.
	OrganizationUserID string `json:"organization_user_id,omitempty"`
}

// LoginRequest authenticates an account and binds the session to a device.
type LoginRequest struct {
	Email              string `json:"email"`
	MasterPasswordHash string `json:"master_password_hash"`

	DeviceID   string     `json:"device_id"`
	DeviceName string     `json:"device_name"`
	DeviceType DeviceType `json:"device_type"`
}

// ChangePasswordRequest swaps the master password. NewEncryptedKey is the
// user key re-encrypted under the new master key.
type ChangePasswordRequest struct {
	MasterPasswordHash    string `json:"master_password_hash"`
	NewMasterPasswordHash string `json:"new_master_password_hash"`
	NewEncryptedKey       string `json:"key"`
	MasterPasswordHint    string `json:"master_password_hint,omitempty"`
}

// ChangeKdfRequest switches the client-side derivation parameters. Because
// the master key depends on them, it carries the same re-encryption material
// as a password change.
type ChangeKdfRequest struct {
	MasterPasswordHash    string `json:"master_password_hash"`
	NewMasterPasswordHash string `json:"new_master_password_hash"`
	NewEncryptedKey       string `json:"key"`
	Kdf                   Kdf    `json:"kdf"`
}

// EmailChangeBeginRequest starts the two-step email change; the confirmation
// token is mailed to the new address.
type EmailChangeBeginRequest struct {
	MasterPasswordHash string `json:"master_password_hash"`
	NewEmail           string `json:"new_email"`
}

// EmailChangeConfirmRequest finishes the email change. The master key is
// salted with the email client-side, so the change re-keys like a password
// change.
type EmailChangeConfirmRequest struct {
	NewEmail              string `json:"new_email"`
	Token                 string `json:"token"`
	MasterPasswordHash    string `json:"master_password_hash"`
	NewMasterPasswordHash string `json:"new_master_password_hash"`
	NewEncryptedKey       string `json:"key"`
}

// KeyPairRequest uploads the account keypair for accounts registered
// without one.
type KeyPairRequest struct {
	EncryptedPrivateKey string `json:"encrypted_private_key"`
	PublicKey           string `json:"public_key"`
}

// AuthRequestCreate opens a passwordless device-approval request. The caller
// is unauthenticated; AccessCode is its self-chosen polling secret. The
// device type is never taken from the body: the server records the type it
// observed on the wire.
type AuthRequestCreate struct {
	Email      string `json:"email"`
	DeviceID   string `json:"device_identifier"`
	AccessCode string `json:"access_code"`
	PublicKey  string `json:"public_key"`
}

// AuthRequestResponse resolves a pending auth request. DeviceID must match
// the authenticated device actually sending the response.
type AuthRequestResponse struct {
	DeviceID string `json:"device_identifier"`
	Approved bool   `json:"request_approved"`

	// EncKey is the user key encrypted to the requester's ephemeral public
	// key; MasterPasswordHash is optional and used by one client flow.
	EncKey             string `json:"key,omitempty"`
	MasterPasswordHash string `json:"master_password_hash,omitempty"`
}
