package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils/mailing"
	"github.com/google/uuid"
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
	if err := db.AutoMigrate(&entities.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestSendMessageAnonymous(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewMessageService(NewMessageRepository(db), mailing.Mailer{})

	before := time.Now()
	err := svc.SendMessage(ctx, domain.SendMessageRequest{
		Name:  "Visitor",
		Email: "v@x.com",
		Body:  "Do you take jam?",
	}, "")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	var stored entities.Message
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("message not stored: %v", err)
	}
	if stored.UserID != nil {
		t.Errorf("anonymous message must have nil user reference, got %v", stored.UserID)
	}
	if stored.Date.Before(before) {
		t.Errorf("message date %v is earlier than request time %v", stored.Date, before)
	}
}

func TestSendMessageLinksSender(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewMessageService(NewMessageRepository(db), mailing.Mailer{})

	senderID := uuid.New()
	err := svc.SendMessage(ctx, domain.SendMessageRequest{
		Name:  "Alice",
		Email: "a@x.com",
		Body:  "Hello",
	}, senderID.String())
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	var stored entities.Message
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("message not stored: %v", err)
	}
	if stored.UserID == nil || *stored.UserID != senderID {
		t.Errorf("got user reference %v, want %s", stored.UserID, senderID)
	}
}

func TestSendMessageBadUserID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewMessageService(NewMessageRepository(db), mailing.Mailer{})

	err := svc.SendMessage(ctx, domain.SendMessageRequest{Name: "X", Email: "x@x.com", Body: "hi"}, "not-a-uuid")
	if err != domain.ErrParseUUID {
		t.Errorf("got err %v, want ErrParseUUID", err)
	}
}
