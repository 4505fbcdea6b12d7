package handlers

import (
	"foodshare/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type (
	PageHandler interface {
		Home(c *fiber.Ctx) error
		About(c *fiber.Ctx) error
	}

	pageHandler struct {
		sessions session.Service
	}
)

func NewPageHandler(sessions session.Service) PageHandler {
	return &pageHandler{sessions: sessions}
}

func (h *pageHandler) Home(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect("/browse")
	}
	return c.Render("index", fiber.Map{
		"title":   "Welcome",
		"message": "Connecting surplus food growers with food pantries.",
	})
}

func (h *pageHandler) About(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{})
}
