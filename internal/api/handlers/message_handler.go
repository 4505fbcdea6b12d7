package handlers

import (
	"foodshare/domain"
	"foodshare/pkg/message"
	"foodshare/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MessageHandler interface {
		ContactPage(c *fiber.Ctx) error
		SendMessage(c *fiber.Ctx) error
	}

	messageHandler struct {
		messageService message.MessageService
		sessions       session.Service
		validator      *validator.Validate
	}
)

func NewMessageHandler(messageService message.MessageService, sessions session.Service, validator *validator.Validate) MessageHandler {
	return &messageHandler{
		messageService: messageService,
		sessions:       sessions,
		validator:      validator,
	}
}

func (h *messageHandler) ContactPage(c *fiber.Ctx) error {
	successMessage := ""
	if c.Query("success") != "" {
		successMessage = domain.MessageContactThanks
	}
	return c.Render("contact", fiber.Map{"successMessage": successMessage})
}

// SendMessage accepts the contact form from anyone; a logged-in sender gets
// linked to the stored message, an anonymous one does not.
func (h *messageHandler) SendMessage(c *fiber.Ctx) error {
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedSendMessage)
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedSendMessage)
	}

	userID := ""
	if identity, ok := h.sessions.Current(c); ok {
		userID = identity.ID
	}

	if err := h.messageService.SendMessage(c.Context(), *req, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedSendMessage)
	}

	return c.Redirect("/contact?success=true")
}
