package domain

var (
	MessageContactThanks     = "Thank you for your feedback, we will get back to you as soon as possible"
	MessageFailedSendMessage = "Failed to send message."
)

type SendMessageRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Body  string `form:"message" validate:"required"`
}
