package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/pkg/auth"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := auth.GenerateToken("alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
	if claims.Name != "Alice" {
		t.Errorf("name = %q, want Alice", claims.Name)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected an expiry claim")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != auth.TokenTTL {
		t.Errorf("ttl = %v, want %v", ttl, auth.TokenTTL)
	}
}

func TestGenerateRequiresEmail(t *testing.T) {
	if _, err := auth.GenerateToken("", "No Email"); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestValidateRejectsTampered(t *testing.T) {
	token, err := auth.GenerateToken("bob@example.com", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	if _, err := auth.ValidateToken(strings.Join(parts, ".")); err != auth.ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	// Sign with the configured secret but an expiry in the past.
	claims := auth.Claims{
		Email: "dave@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-auth.TokenTTL - time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AccessTokenSecret()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateToken(token); err != auth.ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c"} {
		if _, err := auth.ValidateToken(tok); err != auth.ErrTokenInvalid {
			t.Errorf("ValidateToken(%q) err = %v, want ErrTokenInvalid", tok, err)
		}
	}
}

func TestClaimsContextRoundtrip(t *testing.T) {
	claims := &auth.Claims{Email: "carol@example.com"}
	ctx := auth.WithClaims(context.Background(), claims)

	got, ok := auth.ClaimsFromCtx(ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if got.Email != "carol@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if _, ok := auth.ClaimsFromCtx(context.Background()); ok {
		t.Error("expected no claims in fresh context")
	}
}
