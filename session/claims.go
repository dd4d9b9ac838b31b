package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the display-only fields decoded from a JWT access token.
// The signature is never verified, so these values must not gate anything.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an exp claim
func (c TokenClaims) HasExpiry() bool {
	return !c.ExpiresAt.IsZero()
}

// ExpiredAt reports whether exp is before now
func (c TokenClaims) ExpiredAt(now time.Time) bool {
	return c.HasExpiry() && now.After(c.ExpiresAt)
}

// DecodeClaims parses token without verifying its signature
func DecodeClaims(token string) (TokenClaims, error) {
	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &registered); err != nil {
		return TokenClaims{}, fmt.Errorf("decode token claims: %w", err)
	}

	claims := TokenClaims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}
