package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"family-care/internal/ports/auth"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss, err := NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer returned error: %v", err)
	}

	tok, err := iss.Issue(context.Background(), auth.Claims{UserID: "7", Email: "a@b.com", Role: auth.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, err := iss.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if c.UserID != "7" || c.Email != "a@b.com" || c.Role != auth.RoleAdmin {
		t.Fatalf("unexpected claims: %#v", c)
	}
}

func TestIssuer_RejectsExpired(t *testing.T) {
	iss, _ := NewIssuer("test-secret", time.Minute)
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return base }

	tok, err := iss.Issue(context.Background(), auth.Claims{UserID: "1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	iss.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := iss.Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestIssuer_RejectsOtherSecret(t *testing.T) {
	a, _ := NewIssuer("secret-a", time.Hour)
	b, _ := NewIssuer("secret-b", time.Hour)

	tok, _ := a.Issue(context.Background(), auth.Claims{UserID: "1"})
	if _, err := b.Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestIssuer_Errors(t *testing.T) {
	if _, err := NewIssuer("  ", time.Hour); !errors.Is(err, ErrSecretEmpty) {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}

	iss, _ := NewIssuer("s", 0)
	if _, err := iss.Issue(context.Background(), auth.Claims{}); !errors.Is(err, ErrClaimsNoUser) {
		t.Fatalf("expected ErrClaimsNoUser, got %v", err)
	}
	if _, err := iss.Verify(context.Background(), ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
	if _, err := iss.Verify(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret returned error: %v", err)
	}
	b, _ := RandomSecret()
	if len(a) != 64 || a == b {
		t.Fatalf("unexpected secrets %q %q", a, b)
	}
}
