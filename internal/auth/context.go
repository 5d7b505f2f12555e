// Package auth carries the authenticated identity through a request
// context and gates identity-scoped operations.
package auth

import (
	"context"

	"bookvault/internal/core"
)

type ctxKey struct{}

// WithClaims returns a child context carrying the identity claims.
func WithClaims(ctx context.Context, claims core.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// ClaimsFromContext recovers the identity claims, if any.
func ClaimsFromContext(ctx context.Context) (core.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(core.Claims)
	return claims, ok
}

// RequireIdentity is the authorization gate: every mutation of a user's
// own data must pass through it before touching storage.
func RequireIdentity(ctx context.Context) (core.Claims, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return core.Claims{}, core.ErrNotAuthenticated
	}
	return claims, nil
}
