package models

// RotationPayload is the full re-encrypted account state a client submits
// when rotating its user key. The server validates consistency and applies
// it; it never decrypts any of the contained material.
type RotationPayload struct {
	// OldMasterPasswordHash authenticates the rotation against the current
	// master key.
	OldMasterPasswordHash string `json:"old_master_password_hash"`

	Unlock UnlockData `json:"account_unlock_data"`
	Keys   AccountKeys `json:"account_keys"`
	Data   AccountData `json:"account_data"`
}

// UnlockData carries everything that can unlock the account besides the
// vault data itself.
type UnlockData struct {
	MasterPassword  MasterPasswordUnlock   `json:"master_password_unlock_data"`
	EmergencyAccess []EmergencyAccessUnlock `json:"emergency_access_unlock_data"`
	ResetPasswords  []ResetPasswordUnlock   `json:"organization_account_recovery_unlock_data"`
}

// MasterPasswordUnlock restates the account's KDF parameters and email.
// Rotation requires them to match the stored values exactly; it is not a
// parameter-change path.
type MasterPasswordUnlock struct {
	Kdf   Kdf    `json:"kdf"`
	Email string `json:"email"`

	// NewMasterPasswordHash is the authentication hash derived from the new
	// master key; NewEncryptedKey is the user key encrypted under it.
	NewMasterPasswordHash string `json:"master_key_authentication_hash"`
	NewEncryptedKey       string `json:"master_key_encrypted_user_key"`
}

// EmergencyAccessUnlock re-wraps one emergency-access grant key.
type EmergencyAccessUnlock struct {
	ID           string `json:"id"`
	KeyEncrypted string `json:"key_encrypted"`
}

// ResetPasswordUnlock re-wraps one organization reset-password key.
type ResetPasswordUnlock struct {
	OrganizationID   string `json:"organization_id"`
	ResetPasswordKey string `json:"reset_password_key"`
}

// AccountKeys carries the asymmetric keypair. The public key must equal the
// stored one; only the private-key ciphertext changes.
type AccountKeys struct {
	EncryptedPrivateKey string `json:"user_key_encrypted_account_private_key"`
	PublicKey           string `json:"account_public_key"`
}

// AccountData carries the re-encrypted vault entities.
type AccountData struct {
	Ciphers []RotatedCipher `json:"ciphers"`
	Folders []RotatedFolder `json:"folders"`
	Sends   []RotatedSend   `json:"sends"`
}

// RotatedCipher is one re-encrypted vault item. Entries with a non-empty
// OrganizationID belong to organization rotation and are skipped here.
type RotatedCipher struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id,omitempty"`
	Data           string `json:"data"`
}

// RotatedFolder is one re-encrypted folder. A nil ID is tolerated and
// skipped; some clients are known to send a null entry.
type RotatedFolder struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// RotatedSend is one re-encrypted send.
type RotatedSend struct {
	ID   string `json:"id"`
	Data string `json:"data"`
	Akey string `json:"key"`
}
