package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/domain"
	"foodshare/pkg/session"
	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	sessions := session.NewSessionService(false)
	m := NewMiddleware()

	app := fiber.New()
	app.Post("/test-login", func(c *fiber.Ctx) error {
		return sessions.Login(c, domain.Identity{
			ID:       "user-1",
			Username: "alice",
			IsAdmin:  c.Query("admin") == "1",
		})
	})
	app.Get("/browse", m.RequireUser(sessions), func(c *fiber.Ctx) error {
		return c.SendString("items")
	})
	app.Post("/add-food-item", m.RequireUserStrict(sessions), func(c *fiber.Ctx) error {
		return c.SendString("added")
	})
	app.Get("/admin", m.RequireAdmin(sessions, domain.MessageAccessDenied), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func loginCookies(t *testing.T, app *fiber.App, admin bool) []*http.Cookie {
	t.Helper()
	target := "/test-login"
	if admin {
		target += "?admin=1"
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, target, nil))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	return resp.Cookies()
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/browse", nil))
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

func TestRequireUserPassesAuthenticated(t *testing.T) {
	app := newTestApp()
	cookies := loginCookies(t, app, false)

	req := httptest.NewRequest(http.MethodGet, "/browse", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestRequireUserStrictRejectsWithoutRedirect(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/add-food-item", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
	if loc := resp.Header.Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	app := newTestApp()
	cookies := loginCookies(t, app, false)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	app := newTestApp()
	cookies := loginCookies(t, app, true)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
