// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// stretching, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the account UUID in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
var UserIDCtxKey = contextKey("userID")

// DeviceIDCtxKey is the key used to store the device identifier the current
// session token was issued to.
var DeviceIDCtxKey = contextKey("deviceID")

// TokenKindCtxKey is the key used to store the kind of the capability token
// that authenticated the current request.
var TokenKindCtxKey = contextKey("tokenKind")

// GetUserIDFromContext retrieves the account UUID from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetDeviceIDFromContext retrieves the current device identifier from the
// context. Empty when the token carried no device claim.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok
}

// GetTokenKindFromContext retrieves the authenticating token kind from the
// context.
func GetTokenKindFromContext(ctx context.Context) (string, bool) {
	kind, ok := ctx.Value(TokenKindCtxKey).(string)
	return kind, ok
}
