package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	tokenString, err := GenerateJWTToken("riegum", "ana", AccessTokenType, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected non-empty token string")
	}

	claims, err := ValidateAndParseJWTToken(tokenString, "secret-key", "riegum", AccessTokenType)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if claims.Subject != "ana" {
		t.Errorf("expected subject 'ana', got %s", claims.Subject)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestGenerateJWTToken_Unique(t *testing.T) {
	a, _ := GenerateJWTToken("riegum", "ana", AccessTokenType, time.Hour, "k")
	b, _ := GenerateJWTToken("riegum", "ana", AccessTokenType, time.Hour, "k")

	if a == b {
		t.Error("expected two tokens minted in a row to differ")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "ana", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "ana", 0, "key"},
		{"empty key", "iss", "ana", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, AccessTokenType, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	tokenString, _ := GenerateJWTToken("riegum", "ana", AccessTokenType, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(tokenString, "wrong-key", "riegum", "")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	tokenString, _ := GenerateJWTToken("riegum", "ana", AccessTokenType, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(tokenString, "key", "riegum", "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongType(t *testing.T) {
	tokenString, _ := GenerateJWTToken("riegum", "ana", RefreshTokenType, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(tokenString, "key", "riegum", AccessTokenType)
	if err == nil {
		t.Error("expected error for a refresh token used as access token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	tokenString, _ := GenerateJWTToken("real-issuer", "ana", AccessTokenType, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(tokenString, "key", "fake-issuer", "")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", "")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseExpiryFromJWT(t *testing.T) {
	before := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tokenString, _ := GenerateJWTToken("riegum", "ana", AccessTokenType, 30*time.Minute, "key")

	exp, err := ParseExpiryFromJWT(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.Before(before) || exp.After(before.Add(2*time.Second)) {
		t.Errorf("unexpected expiry %v", exp)
	}
}

func TestParseExpiryFromJWT_Opaque(t *testing.T) {
	if _, err := ParseExpiryFromJWT("opaque-session-id"); err == nil {
		t.Error("expected error for a non-JWT value, got nil")
	}
}
