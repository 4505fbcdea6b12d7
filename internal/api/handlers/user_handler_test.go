package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/domain"
	"foodshare/pkg/session"
	"github.com/gofiber/fiber/v2"
)

// fakeSessions stands in for the session store where only the error paths
// matter.
type fakeSessions struct {
	logoutErr error
}

func (s *fakeSessions) Current(c *fiber.Ctx) (domain.Identity, bool) {
	return domain.Identity{}, false
}

func (s *fakeSessions) Login(c *fiber.Ctx, identity domain.Identity) error {
	return nil
}

func (s *fakeSessions) Logout(c *fiber.Ctx) error {
	return s.logoutErr
}

func newLogoutApp(sessions session.Service) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(nil, sessions, nil)
	app.Get("/logout", h.Logout)
	return app
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	app := newLogoutApp(&fakeSessions{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("got redirect to %q, want /login", loc)
	}
}

// A session store that cannot destroy the session sends the visitor back to
// the listings instead of the login form.
func TestLogoutFailureFallsBackToBrowse(t *testing.T) {
	app := newLogoutApp(&fakeSessions{logoutErr: errors.New("store unavailable")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/browse" {
		t.Errorf("got redirect to %q, want /browse", loc)
	}
}
