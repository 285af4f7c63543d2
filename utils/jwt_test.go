package utils

import (
	"errors"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "storefront")

	token, expires, err := m.GenerateJWT("ada")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if time.Until(expires) > TokenTTL || time.Until(expires) <= 0 {
		t.Errorf("expiry %v not within TTL", expires)
	}

	claims, err := m.ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "ada" {
		t.Errorf("UserID: got %q, want ada", claims.UserID)
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("secret", "storefront")
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := m.GenerateJWT("ada")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := NewJWTManager("secret", "storefront").ValidateJWT(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	token, _, _ := NewJWTManager("secret", "storefront").GenerateJWT("ada")

	tests := []struct {
		name string
		m    *JWTManager
		tok  string
	}{
		{"wrong key", NewJWTManager("other", "storefront"), token},
		{"wrong issuer", NewJWTManager("secret", "elsewhere"), token},
		{"garbage", NewJWTManager("secret", "storefront"), "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.ValidateJWT(tt.tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Error("hash equals plaintext")
	}
	if !CheckPasswordHash("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("hunter3", hash) {
		t.Error("wrong password accepted")
	}
}
