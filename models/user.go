package models

import "time"

// User represents a vault account. The server never sees the master password
// or any plaintext vault data: PasswordHash is a server-side PBKDF2 of the
// *client-derived* master-key authentication hash, and all key material
// (EncryptedKey, PrivateKey, vault ciphertexts) is opaque ciphertext
// produced on the client.
type User struct {
	// ID is the account UUID.
	ID string `json:"id"`

	// Email is the login address, stored lowercased.
	Email string `json:"email"`

	// Name is the display name. Limited to 50 characters.
	Name string `json:"name"`

	// EmailNew and EmailNewToken track an email change in progress.
	// Both are empty when no change is pending.
	EmailNew      string `json:"-"`
	EmailNewToken string `json:"-"`

	// PasswordHash is the hex PBKDF2-SHA256 of the client-supplied
	// master-key authentication hash, salted with Salt and stretched
	// PasswordIterations times.
	PasswordHash       string `json:"-"`
	Salt               string `json:"-"`
	PasswordIterations int    `json:"-"`

	// PasswordHint is an optional user-provided reminder. Empty means none.
	PasswordHint string `json:"-"`

	// EncryptedKey is the user's symmetric key, encrypted under the master
	// key. Replaced on every password change and key rotation.
	EncryptedKey string `json:"-"`

	// PrivateKey is the account's asymmetric private key encrypted under
	// the user key; PublicKey is its plaintext counterpart. The keypair is
	// immutable across key rotation, only the PrivateKey ciphertext changes.
	PrivateKey string `json:"-"`
	PublicKey  string `json:"public_key"`

	// Kdf holds the client-side derivation parameters returned at prelogin.
	Kdf Kdf `json:"kdf"`

	// SecurityStamp is the session epoch. Every session token embeds the
	// stamp current at issue time; regenerating the stamp invalidates all
	// previously issued tokens.
	SecurityStamp string `json:"-"`

	// StaleTokenKinds lists capability-token kinds issued before the last
	// password change that must be rejected even if otherwise still valid.
	StaleTokenKinds []string `json:"-"`

	// APIKey is the optional machine credential. Empty until first requested.
	APIKey string `json:"-"`

	VerifiedAt      *time.Time `json:"-"`
	LastVerifyingAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
