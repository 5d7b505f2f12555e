// Package web serves the REST and GraphQL surfaces over one shared
// identity model: both transports interpret an inbound token through the
// same extraction and verification path, differing only in what they do
// when no identity is recovered.
package web

import (
	"github.com/gofiber/fiber/v3"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"bookvault/internal/graphql"
	"bookvault/internal/logging"
	"bookvault/internal/services"
	"bookvault/internal/token"
)

type Server struct {
	authSvc *services.AuthService
	bookSvc *services.BookService
	tokens  *token.Service
	schema  *graphqlgo.Schema
	log     logging.Logger
}

func NewServer(authSvc *services.AuthService, bookSvc *services.BookService, tokens *token.Service, log logging.Logger) (*Server, error) {
	schema, err := graphql.ParseSchema(authSvc, bookSvc)
	if err != nil {
		return nil, err
	}

	return &Server{
		authSvc: authSvc,
		bookSvc: bookSvc,
		tokens:  tokens,
		schema:  schema,
		log:     log,
	}, nil
}

func (s *Server) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/users")

	// Public routes
	api.Post("/", s.register)
	api.Post("/login", s.login)

	// Protected routes
	api.Get("/me", s.requireAuth, s.me)
	api.Put("/books", s.requireAuth, s.saveBook)
	api.Delete("/books/:bookId", s.requireAuth, s.deleteBook)

	// GraphQL builds its own identity context and never halts on a bad
	// token; resolvers enforce authorization themselves.
	app.Post("/graphql", s.graphQL)
}
