package jwt

import (
	"errors"
	"fmt"
	"time"

	"foodshare/domain"
	"foodshare/internal/utils"
	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService signs and validates the short-lived password-reset tokens
	// mailed to users. Session identity itself is cookie-based, not JWT.
	JWTService interface {
		GenerateResetToken(userID string, duration time.Duration) (string, error)
		ValidateResetToken(token string) (string, error)
	}

	resetClaims struct {
		UserID string `json:"user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "FOODSHARE",
	}
}

func (j *jwtService) GenerateResetToken(userID string, duration time.Duration) (string, error) {
	claims := resetClaims{
		userID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateResetToken(token string) (string, error) {
	t_Token, err := jwt.ParseWithClaims(token, &resetClaims{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*resetClaims)
	return claims.UserID, nil
}
