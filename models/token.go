package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds embedded in the "kind" claim. Session tokens authenticate the
// normal API surface; the single-purpose kinds gate one endpoint each and can
// be declared stale by a password change without touching the session epoch.
const (
	TokenKindSession       = "session"
	TokenKindRotateKeys    = "rotate_keys"
	TokenKindPublicKeys    = "public_keys"
	TokenKindContacts      = "contacts"
	TokenKindVerifyEmail   = "verify_email"
	TokenKindDeleteAccount = "delete_account"
)

// Claims is the JWT claim set issued by this server. Beyond the registered
// claims it carries the device the token was issued to, the user's security
// stamp at issue time, and the token kind.
//
// A token is honored only while its SecurityStamp matches the stamp currently
// stored for the user, so regenerating the stamp invalidates every token
// issued before it.
type Claims struct {
	jwt.RegisteredClaims

	DeviceID      string `json:"device,omitempty"`
	SecurityStamp string `json:"sstamp,omitempty"`
	Kind          string `json:"kind,omitempty"`
}

// Token pairs a parsed JWT with its compact serialized form.
type Token struct {
	*jwt.Token `json:"-"`

	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`
}

// UserID returns the "sub" claim, which this server sets to the account UUID.
func (t *Token) UserID() string {
	return t.Claims.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
