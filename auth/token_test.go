package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return ts
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := newTestTokenService(t)

	tok, err := ts.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := ts.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", userID, "user-123")
	}
}

func TestTokenService_ExpiredAfterTTL(t *testing.T) {
	ts := newTestTokenService(t)

	tok, err := ts.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Still valid just inside the window.
	ts.WithClock(func() time.Time { return time.Now().Add(59 * time.Minute) })
	if _, err := ts.Verify(tok); err != nil {
		t.Fatalf("token should still verify before expiry, got %v", err)
	}

	// Past issuance+1h the same token must be rejected.
	ts.WithClock(func() time.Time { return time.Now().Add(61 * time.Minute) })
	_, err = ts.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	ts := newTestTokenService(t)
	other, err := NewTokenService([]byte("different-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	tok, err := other.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = ts.Verify(tok)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	ts := newTestTokenService(t)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := ts.Verify(tok)
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService(nil, time.Hour); err == nil {
		t.Fatal("expected error for missing signing key")
	}
}
