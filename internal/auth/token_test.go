package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	token, expiresAt, err := tm.GenerateToken("64f0c1", domain.PoolMember)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	wantExpiry := time.Now().Add(30 * 24 * time.Hour)
	if expiresAt.Before(wantExpiry.Add(-time.Minute)) || expiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("expiry = %v, want about %v", expiresAt, wantExpiry)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "64f0c1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Pool != domain.PoolMember {
		t.Fatalf("pool = %q, want MEMBER", claims.Pool)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 1).GenerateToken("id", domain.PoolAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewTokenManager("secret-b", 1).ParseToken(token); err == nil {
		t.Fatal("expected signature verification failure")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := NewTokenManager("secret", 1).ParseToken("not.a.jwt"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestTokenTTLDefaultsToThirtyDays(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, expiresAt, err := tm.GenerateToken("id", domain.PoolUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	want := time.Now().Add(30 * 24 * time.Hour)
	if expiresAt.Before(want.Add(-time.Minute)) || expiresAt.After(want.Add(time.Minute)) {
		t.Fatalf("expiry = %v, want about %v", expiresAt, want)
	}
}
