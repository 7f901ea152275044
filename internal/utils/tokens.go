package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns a string of n characters drawn uniformly from
// the alphanumeric alphabet using crypto/rand.
func GenerateRandomString(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating random string: %w", err)
		}
		out[i] = alphanumeric[idx.Int64()]
	}
	return string(out), nil
}

// GenerateNumericToken returns an n-digit decimal token, zero-padded. Used
// for the email-change confirmation code.
func GenerateNumericToken(n int) (string, error) {
	limit := big.NewInt(10)
	limit.Exp(limit, big.NewInt(int64(n)), nil)

	value, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("error generating numeric token: %w", err)
	}
	return fmt.Sprintf("%0*d", n, value), nil
}

// GenerateAPIKey returns a fresh 30-character machine credential.
func GenerateAPIKey() (string, error) {
	return GenerateRandomString(30)
}
