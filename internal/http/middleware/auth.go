package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"archivo/internal/auth"
	"archivo/internal/authz"
)

// PrincipalLocalKey stores the authenticated authz.Principal in locals.
const PrincipalLocalKey = "principal"

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth requires a valid bearer token on every path except those starting with
// one of the public prefixes. Failures return 401 through the error handler.
func Auth(v TokenVerifier, public ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, p := range public {
			if path == p || strings.HasPrefix(path, p+"/") {
				return c.Next()
			}
		}

		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token has expired"
			}
			return fiber.NewError(fiber.StatusUnauthorized, msg)
		}
		pr, err := claims.Principal()
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		c.Locals(PrincipalLocalKey, pr)
		return c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c *fiber.Ctx) (authz.Principal, bool) {
	pr, ok := c.Locals(PrincipalLocalKey).(authz.Principal)
	return pr, ok
}
