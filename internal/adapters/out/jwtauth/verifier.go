// Package jwtauth verifies HS256 bearer tokens issued by the identity
// provider and exposes their claims to the access guard.
package jwtauth

import (
	"context"
	"time"

	"printorders/internal/core/application/access"
	"printorders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the payload layout of an identity-provider token.
// role is optional; when absent the guard falls back to the profile store.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier implements access.TokenVerifier with a shared HMAC secret.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewVerifier creates a verifier. An empty issuer disables the issuer check.
func NewVerifier(secret, issuer string, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{secret: []byte(secret), issuer: issuer, now: now}
}

// Verify checks signature, expiry and issuer. Every failure is an
// UnauthenticatedError except a missing secret, which is a NotConfiguredError.
func (v *Verifier) Verify(_ context.Context, token string) (access.Claims, error) {
	if len(v.secret) == 0 {
		return access.Claims{}, errs.NewNotConfiguredError("token verification", "AUTH_JWT_SECRET")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithIssuedAt(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return access.Claims{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	claims := access.Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Name:    parsed.Name,
		Role:    parsed.Role,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	return claims, nil
}

// Sign issues a token for the given claims. Used by local tooling and tests.
func (v *Verifier) Sign(claims access.Claims, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", errs.NewNotConfiguredError("token verification", "AUTH_JWT_SECRET")
	}

	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = v.now()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})
	return token.SignedString(v.secret)
}
