package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2KeyLen is the derived key length in bytes (SHA-256 output size).
const pbkdf2KeyLen = 32

// StretchPassword derives the server-side verifier for a client-supplied
// master-password authentication hash.
//
// The client never sends the master password itself: it sends a hash already
// derived from it. The server stretches that value once more with
// PBKDF2-SHA256 under a per-user random salt before storing it, so a stolen
// database row cannot be replayed as a login credential.
//
// Parameters:
//
//	password   - the client-derived authentication hash (base64 text)
//	salt       - per-user random salt, hex-encoded
//	iterations - PBKDF2 round count
//
// Returns the hex-encoded derived key.
func StretchPassword(password, salt string, iterations int) (string, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("error decoding password salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), saltBytes, iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key), nil
}

// VerifyPassword stretches the candidate with the stored salt and iteration
// count and compares it to the stored verifier in constant time.
func VerifyPassword(candidate, storedHash, salt string, iterations int) bool {
	derived, err := StretchPassword(candidate, salt, iterations)
	if err != nil {
		return false
	}
	return SecureCompare(derived, storedHash)
}

// SecureCompare reports whether two strings are equal without leaking the
// position of the first mismatch through timing.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// GenerateSalt returns a fresh 32-byte random salt, hex-encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}
