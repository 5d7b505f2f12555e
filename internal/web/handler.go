package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"bookvault/internal/core"
	"bookvault/internal/services"
)

// register handles POST /api/users.
func (s *Server) register(c fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	payload, err := s.authSvc.Register(c.Context(), input)
	if err != nil {
		return s.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(payload)
}

type loginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/users/login. The identifier may arrive in
// either the username or email field.
func (s *Server) login(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	login := input.Username
	if login == "" {
		login = input.Email
	}

	payload, err := s.authSvc.Login(c.Context(), login, input.Password)
	if err != nil {
		return s.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(payload)
}

// me handles GET /api/users/me.
func (s *Server) me(c fiber.Ctx) error {
	user, err := s.bookSvc.Me(c.Context())
	if err != nil {
		return s.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user)
}

// saveBook handles PUT /api/users/books.
func (s *Server) saveBook(c fiber.Ctx) error {
	var book core.Book
	if err := c.Bind().Body(&book); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := s.bookSvc.SaveBook(c.Context(), book)
	if err != nil {
		return s.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user)
}

// deleteBook handles DELETE /api/users/books/:bookId.
func (s *Server) deleteBook(c fiber.Ctx) error {
	user, err := s.bookSvc.RemoveBook(c.Context(), c.Params("bookId"))
	if err != nil {
		return s.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user)
}

// handleError maps domain errors to stable HTTP responses. Unexpected
// faults are logged and surfaced as a generic 500, so clients can always
// distinguish "log in again" from "server broken".
func (s *Server) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error(c.Context(), "request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrNotAuthenticated),
		errors.Is(err, core.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrInvalidToken):
		return http.StatusForbidden

	case errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrBookIDRequired),
		errors.Is(err, core.ErrBookTitleMissing):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
