package handlers

import (
	"errors"

	"foodshare/domain"
	"foodshare/pkg/session"
	"foodshare/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		RegisterPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		ForgotPage(c *fiber.Ctx) error
		ForgotPassword(c *fiber.Ctx) error
		ResetPage(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		sessions    session.Service
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, sessions session.Service, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		sessions:    sessions,
		validator:   validator,
	}
}

func (h *userHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Render("login", fiber.Map{"error": domain.MessageInvalidCredentials})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Render("login", fiber.Map{"error": domain.MessageInvalidCredentials})
	}

	identity, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Render("login", fiber.Map{"error": domain.MessageUserNotFound})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Render("login", fiber.Map{"error": domain.MessageInvalidCredentials})
		default:
			return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedLogin)
		}
	}

	if err := h.sessions.Login(c, identity); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedProcessRequest)
	}

	if identity.IsAdmin {
		return c.Redirect("/admin")
	}
	return c.Redirect("/browse")
}

func (h *userHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{})
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Render("register", fiber.Map{"error": domain.MessageFailedRegister})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Render("register", fiber.Map{"error": domain.MessageFailedRegister})
	}

	if err := h.userService.Register(c.Context(), *req); err != nil {
		return c.Render("register", fiber.Map{"error": domain.MessageFailedRegister})
	}

	return c.Redirect("/login")
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return c.Redirect("/browse")
	}
	return c.Redirect("/login")
}

func (h *userHandler) ForgotPage(c *fiber.Ctx) error {
	return c.Render("forgot", fiber.Map{})
}

func (h *userHandler) ForgotPassword(c *fiber.Ctx) error {
	req := new(domain.ForgotPasswordRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Render("forgot", fiber.Map{"error": domain.MessageFailedResetLink})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Render("forgot", fiber.Map{"error": domain.MessageFailedResetLink})
	}

	if err := h.userService.ForgotPassword(c.Context(), *req); err != nil {
		return c.Render("forgot", fiber.Map{"error": domain.MessageFailedResetLink})
	}

	// Same message whether or not the address exists.
	return c.Render("forgot", fiber.Map{"successMessage": domain.MessageResetLinkSent})
}

func (h *userHandler) ResetPage(c *fiber.Ctx) error {
	return c.Render("reset", fiber.Map{"token": c.Query("token")})
}

func (h *userHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Render("reset", fiber.Map{"error": domain.MessageFailedResetLink})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Render("reset", fiber.Map{"error": domain.MessageFailedResetLink, "token": req.Token})
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		return c.Render("reset", fiber.Map{"error": domain.MessageFailedResetLink, "token": req.Token})
	}

	return c.Render("login", fiber.Map{"successMessage": domain.MessagePasswordUpdated})
}
