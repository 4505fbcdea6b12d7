package jwt

import (
	"errors"
	"testing"
	"time"

	"foodshare/domain"
)

func newTestService() JWTService {
	return &jwtService{secretKey: "test-secret", issuer: "FOODSHARE"}
}

func TestResetTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateResetToken("user-123", 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken failed: %v", err)
	}

	userID, err := svc.ValidateResetToken(token)
	if err != nil {
		t.Fatalf("ValidateResetToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("got user %q, want %q", userID, "user-123")
	}
}

func TestResetTokenExpired(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateResetToken("user-123", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateResetToken failed: %v", err)
	}

	if _, err := svc.ValidateResetToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("got err %v, want ErrTokenExpired", err)
	}
}

func TestResetTokenInvalid(t *testing.T) {
	svc := newTestService()

	if _, err := svc.ValidateResetToken("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("got err %v, want ErrTokenInvalid", err)
	}
}
