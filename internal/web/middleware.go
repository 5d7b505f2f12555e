package web

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"bookvault/internal/auth"
	"bookvault/internal/core"
)

// requireAuth is the halting middleware variant used by the REST routes:
// a request with no token stops with 401, a request whose token fails
// verification stops with 403. On success the claims are attached to the
// request context for downstream handlers.
func (s *Server) requireAuth(c fiber.Ctx) error {
	candidate := tokenFromRequest(c)
	if candidate == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": core.ErrMissingToken.Error(),
		})
	}

	claims, err := s.tokens.Verify(candidate)
	if err != nil {
		s.log.Warn(c.Context(), "token verification failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": core.ErrInvalidToken.Error(),
		})
	}

	c.SetContext(auth.WithClaims(c.Context(), claims))
	return c.Next()
}

// identityContext is the non-halting variant used by the GraphQL
// endpoint: it returns a context carrying claims when a valid token was
// offered and an anonymous context otherwise. Verification failures are
// logged, never escalated.
func (s *Server) identityContext(c fiber.Ctx) context.Context {
	ctx := c.Context()

	candidate := tokenFromRequest(c)
	if candidate == "" {
		return ctx
	}

	claims, err := s.tokens.Verify(candidate)
	if err != nil {
		s.log.Warn(ctx, "token verification failed", "path", c.Path(), "error", err)
		return ctx
	}

	return auth.WithClaims(ctx, claims)
}
