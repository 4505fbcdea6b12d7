package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils/mailing"
	"foodshare/pkg/jwt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost         = 10
	resetTokenDuration = 15 * time.Minute
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.Identity, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// Register inserts a new non-admin user. Username uniqueness is not checked
// before the insert; concurrent registrations of the same name can both land.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		IsAdmin:  false,
	}

	return s.userRepository.RegisterUser(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.Identity, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, domain.ErrUserNotFound
		}
		return domain.Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return domain.Identity{
		ID:       user.ID.String(),
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// ForgotPassword mails a short-lived reset link. An unknown email is treated
// as success so the form never reveals which addresses are registered.
func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateResetToken(user.ID.String(), resetTokenDuration)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset?token=%s", s.mailer.AppURL, token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Follow <a href=%q>this link</a> to reset your password. The link expires in 15 minutes.</p>",
		user.Username, link,
	)

	if err := s.mailer.Send(user.Email, "Reset your password", body); err != nil {
		log.Errorf("error sending reset email to %s: %v", user.Email, err)
		return err
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	userID, err := s.jwtService.ValidateResetToken(req.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePassword(ctx, userID, string(hash))
}
