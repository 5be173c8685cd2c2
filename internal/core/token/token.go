// Package token issues and verifies the signed credentials that back
// authentication. A credential is an HS256 JWT carrying the user's name and
// email plus standard issued-at and expiry claims.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded credential payload. Name and email are lookup keys
// only; possession of valid claims is never sufficient authorization on its
// own — the caller must re-resolve them against the user store.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies credentials with a single shared secret.
// Safe for concurrent use; it holds no mutable state.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager. A non-positive ttl falls back to 24 hours.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the lifetime applied to issued credentials.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a credential for the given user, valid for the manager's TTL.
func (m *Manager) Issue(name, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of a raw credential and returns
// its claims. Every failure mode (malformed token, signature mismatch,
// expiry) collapses into ErrInvalidToken so callers cannot leak the reason.
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
