package message

import (
	"context"
	"fmt"
	"time"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils"
	"foodshare/internal/utils/mailing"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	MessageService interface {
		SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) error
	}

	messageService struct {
		messageRepository MessageRepository
		mailer            mailing.Mailer
	}
)

func NewMessageService(messageRepository MessageRepository, mailer mailing.Mailer) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		mailer:            mailer,
	}
}

// SendMessage stores a contact-form message. userID is empty for anonymous
// visitors; the stored reference stays null in that case.
func (s *messageService) SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) error {
	var userRef *uuid.UUID
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return domain.ErrParseUUID
		}
		userRef = &parsed
	}

	msg := &entities.Message{
		ID:     uuid.New(),
		UserID: userRef,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
		Date:   time.Now(),
	}

	if err := s.messageRepository.AddMessage(ctx, msg); err != nil {
		return err
	}

	s.notifyAdmin(req)
	return nil
}

// notifyAdmin mails new contact messages to the configured admin address.
// Best effort: a mailing failure is logged and never fails the request.
func (s *messageService) notifyAdmin(req domain.SendMessageRequest) {
	adminEmail := utils.GetConfig("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	body := fmt.Sprintf(
		"<p>New contact message from %s (%s):</p><p>%s</p>",
		req.Name, req.Email, req.Body,
	)
	if err := s.mailer.Send(adminEmail, "New contact message", body); err != nil {
		log.Errorf("error sending contact notification: %v", err)
	}
}
