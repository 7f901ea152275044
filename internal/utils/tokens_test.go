package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(30)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(s) != 30 {
		t.Errorf("expected 30 characters, got %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(alphanumeric, r) {
			t.Errorf("unexpected character %q", r)
		}
	}
}

func TestGenerateNumericToken(t *testing.T) {
	token, err := GenerateNumericToken(6)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(token) != 6 {
		t.Errorf("expected 6 digits, got %d (%s)", len(token), token)
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			t.Errorf("expected digit, got %q", r)
		}
	}
}

func TestGenerateAPIKey_Distinct(t *testing.T) {
	a, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	b, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if a == b {
		t.Error("two generated keys must differ")
	}
}
