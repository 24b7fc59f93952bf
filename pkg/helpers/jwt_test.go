package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	access, exp, err := m.GenerateAccessToken("user-1", "sess-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Error("expiry is not in the future")
	}

	claims, err := m.ParseAccessToken(access)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.SessionID != "sess-1" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTSecretsAreDistinct(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	refresh, _, err := m.GenerateRefreshToken("user-1", "sess-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Error("refresh token accepted by the access parser")
	}
	if _, err := m.ParseRefreshToken(refresh); err != nil {
		t.Errorf("ParseRefreshToken: %v", err)
	}
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	a := NewJWTManager("secret-a", "secret-a", time.Minute, time.Minute)
	token, _, err := a.GenerateAccessToken("user-1", "sess-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	b := NewJWTManager("secret-b", "secret-b", time.Minute, time.Minute)
	if _, err := b.ParseAccessToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	token, _, err := m.GenerateAccessToken("user-1", "sess-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}
