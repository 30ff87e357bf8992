// Package auth issues and verifies the signed bearer tokens that identify
// API callers. Tokens are HS256 JWTs with a fixed one-hour lifetime; there
// is no server-side revocation list, validity is signature plus expiry.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/bistro/config"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = time.Hour

// ErrTokenInvalid is returned when a token is malformed, badly signed,
// expired, or carries no email claim.
var ErrTokenInvalid = errors.New("auth: invalid token")

// Claims is the typed JWT payload. Email is mandatory; arbitrary
// caller-supplied fields are never embedded.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AccessTokenSecret())
}

// GenerateToken creates a signed token for the given identity.
func GenerateToken(email, name string) (string, error) {
	if email == "" {
		return "", errors.New("auth: email is required")
	}

	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// ctxKey is the unexported key used to store decoded claims in context.
type ctxKey struct{}

// WithClaims stores decoded claims in ctx for downstream handlers.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromCtx retrieves the decoded claims attached by the auth middleware.
func ClaimsFromCtx(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}
