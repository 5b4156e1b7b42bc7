package security

import (
	"testing"
	"time"

	"jobport/internal/common"
)

func TestJWTProviderRoundTrip(t *testing.T) {
	provider := NewJWTProvider("secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "recruiter", time.Hour)
	if err != nil {
		t.Fatalf("expected token, got %v", err)
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry")
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "recruiter" {
		t.Fatalf("expected role recruiter, got %s", claims.Role)
	}
}

func TestJWTProviderRejectsTamperedToken(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "admin", time.Hour)
	if err != nil {
		t.Fatalf("expected token, got %v", err)
	}
	if _, err := provider.Parse(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
	if _, err := NewJWTProvider("other").Parse(token); err == nil {
		t.Fatal("expected token signed with different secret to be rejected")
	}
}

func TestJWTProviderRejectsExpiredToken(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "job_seeker", -time.Minute)
	if err != nil {
		t.Fatalf("expected token, got %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
