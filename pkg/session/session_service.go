package session

import (
	"foodshare/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type (
	// Service maps the opaque session cookie onto the logged-in identity.
	// The identity lives server-side; the browser only ever sees the token.
	Service interface {
		Current(c *fiber.Ctx) (domain.Identity, bool)
		Login(c *fiber.Ctx, identity domain.Identity) error
		Logout(c *fiber.Ctx) error
	}

	sessionService struct {
		store *session.Store
	}
)

// NewSessionService builds the backing store. The Secure cookie flag follows
// the deployment: on for TLS deployments, off for local plain HTTP.
func NewSessionService(secureCookie bool) Service {
	return &sessionService{
		store: session.New(session.Config{
			CookieHTTPOnly: true,
			CookieSecure:   secureCookie,
		}),
	}
}

func (s *sessionService) Current(c *fiber.Ctx) (domain.Identity, bool) {
	sess, err := s.store.Get(c)
	if err != nil {
		return domain.Identity{}, false
	}

	id, ok := sess.Get("user_id").(string)
	if !ok || id == "" {
		return domain.Identity{}, false
	}
	username, _ := sess.Get("username").(string)
	isAdmin, _ := sess.Get("is_admin").(bool)

	return domain.Identity{ID: id, Username: username, IsAdmin: isAdmin}, true
}

func (s *sessionService) Login(c *fiber.Ctx, identity domain.Identity) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}

	sess.Set("user_id", identity.ID)
	sess.Set("username", identity.Username)
	sess.Set("is_admin", identity.IsAdmin)

	return sess.Save()
}

func (s *sessionService) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
