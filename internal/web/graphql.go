package web

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
)

type graphQLParams struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphQL handles POST /graphql. The execution context is built by the
// non-halting identity middleware, so anonymous operations stay legal and
// protected resolvers report their own authorization failures.
func (s *Server) graphQL(c fiber.Ctx) error {
	var params graphQLParams
	if err := c.Bind().Body(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resp := s.schema.Exec(s.identityContext(c), params.Query, params.OperationName, params.Variables)
	return c.Status(http.StatusOK).JSON(resp)
}
