package handlers

import (
	"errors"
	"net/url"

	"foodshare/domain"
	"foodshare/pkg/admin"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		Dashboard(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		RemoveUser(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) Dashboard(c *fiber.Ctx) error {
	details, err := h.adminService.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedFetchUsers)
	}
	return c.Render("admin", fiber.Map{
		"users":   details,
		"success": c.Query("success"),
	})
}

func (h *adminHandler) RemoveItem(c *fiber.Ctx) error {
	req := new(domain.RemoveItemRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedRemoveItem)
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedRemoveItem)
	}

	if err := h.adminService.RemoveItem(c.Context(), req.ItemID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedRemoveItem)
	}

	return c.Redirect("/admin?success=" + url.QueryEscape(domain.MessageItemRemoved))
}

func (h *adminHandler) RemoveUser(c *fiber.Ctx) error {
	req := new(domain.RemoveUserRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedRemoveUser)
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedRemoveUser)
	}

	if err := h.adminService.RemoveUser(c.Context(), req.UserID); err != nil {
		if errors.Is(err, domain.ErrCascadeDelete) {
			return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedRemoveLinked)
		}
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedRemoveUser)
	}

	return c.Redirect("/admin?success=" + url.QueryEscape(domain.MessageUserRemoved))
}
