package middleware

import (
	"foodshare/pkg/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequireUser(sessions session.Service) fiber.Handler
		RequireUserStrict(sessions session.Service) fiber.Handler
		RequireAdmin(sessions session.Service, message string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New()
}

// RequireUser guards page views: anonymous visitors go back to the login form.
func (m *middleware) RequireUser(sessions session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := sessions.Current(c)
		if !ok {
			return c.Redirect("/login")
		}
		c.Locals("user_id", identity.ID)
		c.Locals("identity", identity)
		return c.Next()
	}
}

// RequireUserStrict guards form posts that get a bare 403 instead of a redirect.
func (m *middleware) RequireUserStrict(sessions session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := sessions.Current(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
		}
		c.Locals("user_id", identity.ID)
		c.Locals("identity", identity)
		return c.Next()
	}
}

func (m *middleware) RequireAdmin(sessions session.Service, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := sessions.Current(c)
		if !ok || !identity.IsAdmin {
			return c.Status(fiber.StatusForbidden).SendString(message)
		}
		c.Locals("user_id", identity.ID)
		c.Locals("identity", identity)
		return c.Next()
	}
}
