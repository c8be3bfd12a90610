package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"archivo/internal/authz"
	"archivo/internal/http/middleware"
)

// principal returns the caller authenticated by middleware.Auth.
func principal(c *fiber.Ctx) (authz.Principal, error) {
	pr, ok := middleware.PrincipalFrom(c)
	if !ok {
		return authz.Principal{}, fiber.ErrUnauthorized
	}
	return pr, nil
}

// idParam parses a positive integer route parameter.
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
}
