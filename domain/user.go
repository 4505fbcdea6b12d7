package domain

import (
	"errors"
)

var (
	MessageUserNotFound       = "User not found."
	MessageInvalidCredentials = "Invalid credentials."
	MessageFailedRegister     = "Error registering new user."
	MessageFailedLogin        = "Database error during login."
	MessageFailedResetLink    = "Unable to process the reset request."
	MessageResetLinkSent      = "If that email is registered, a reset link is on its way."
	MessagePasswordUpdated    = "Password updated, you can log in now."

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

type (
	RegisterRequest struct {
		Username string `form:"username" validate:"required"`
		Password string `form:"password" validate:"required"`
		Email    string `form:"email" validate:"required,email"`
	}

	LoginRequest struct {
		Username string `form:"username" validate:"required"`
		Password string `form:"password" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `form:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `form:"token" validate:"required"`
		Password string `form:"password" validate:"required"`
	}
)
