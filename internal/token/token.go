// Package token issues and verifies signed identity tokens. Token content
// is the only state: there is no session table and no I/O beyond the one
// injected signing secret, so verification scales horizontally without
// shared session storage.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookvault/internal/core"
)

// DefaultValidity is the fixed token lifetime measured from issuance.
const DefaultValidity = time.Hour

type tokenClaims struct {
	jwt.RegisteredClaims
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Service signs and verifies identity tokens with a symmetric secret.
// The secret is read-only after construction and safe for concurrent use.
type Service struct {
	secret   []byte
	validity time.Duration
	parser   *jwt.Parser
}

// New builds a Service from the configured secret. An empty secret is a
// configuration fault, never a silently-unsigned token.
func New(secret string, validity time.Duration) (*Service, error) {
	if secret == "" {
		return nil, core.ErrSigningKeyMissing
	}
	if validity <= 0 {
		validity = DefaultValidity
	}

	return &Service{
		secret:   []byte(secret),
		validity: validity,
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Issue signs the claims with an expiration of issuance time plus the
// configured validity.
func (s *Service) Issue(claims core.Claims) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature integrity and expiration and recovers the
// claims. Malformed, tampered, and expired tokens all collapse into
// core.ErrInvalidToken; the underlying cause is wrapped for logging only,
// so callers cannot turn the distinction into observable behavior.
func (s *Service) Verify(tokenString string) (core.Claims, error) {
	claims := &tokenClaims{}

	t, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return core.Claims{}, fmt.Errorf("%w: %v", core.ErrInvalidToken, err)
	}
	if !t.Valid {
		return core.Claims{}, core.ErrInvalidToken
	}

	return core.Claims{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
