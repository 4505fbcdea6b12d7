package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils/mailing"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (UserService, UserRepository) {
	t.Helper()
	repo := NewUserRepository(newTestDB(t))
	return NewUserService(repo, nil, mailing.Mailer{}), repo
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Email:    "a@x.com",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	identity, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("got username %q, want %q", identity.Username, "alice")
	}
	if identity.IsAdmin {
		t.Error("self-registered user must not be admin")
	}
	if identity.ID == "" {
		t.Error("identity has no id")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("got err %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "pw"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got err %v, want ErrUserNotFound", err)
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	if err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	stored, err := repo.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if stored.Password == "pw1" {
		t.Error("password stored in plain text")
	}
	if stored.Password == "" {
		t.Error("no password hash stored")
	}
}
