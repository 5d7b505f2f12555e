package web

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const bearerScheme = "Bearer "

// tokenExtractor returns a candidate token from one request source, or ""
// when that source offers none.
type tokenExtractor func(c fiber.Ctx) string

// Candidate sources in priority order: explicit body field, query
// parameter, Authorization header.
var defaultExtractors = []tokenExtractor{fromBody, fromQuery, fromAuthHeader}

// tokenFromRequest tries each extractor in order and returns the first
// candidate found. No candidate is "no identity", not an error.
func tokenFromRequest(c fiber.Ctx) string {
	for _, extract := range defaultExtractors {
		if tok := extract(c); tok != "" {
			return tok
		}
	}
	return ""
}

func fromBody(c fiber.Ctx) string {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Token)
}

func fromQuery(c fiber.Ctx) string {
	return strings.TrimSpace(c.Query("token"))
}

// fromAuthHeader accepts only the two-token "Bearer <token>" scheme. A
// header without the scheme, or empty after stripping it, is no candidate.
func fromAuthHeader(c fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerScheme):])
}
