package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-1")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user ID to be present")
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected missing user ID")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected type mismatch to report missing")
	}
}

func TestGetDeviceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, "device-1")

	deviceID, ok := GetDeviceIDFromContext(ctx)
	if !ok || deviceID != "device-1" {
		t.Errorf("expected device-1, got %s (ok=%v)", deviceID, ok)
	}
}

func TestGetTokenKindFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenKindCtxKey, "session")

	kind, ok := GetTokenKindFromContext(ctx)
	if !ok || kind != "session" {
		t.Errorf("expected session, got %s (ok=%v)", kind, ok)
	}
}
