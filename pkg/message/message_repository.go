package message

import (
	"context"

	"foodshare/entities"
	"gorm.io/gorm"
)

type (
	MessageRepository interface {
		AddMessage(ctx context.Context, message *entities.Message) error
		GetMessagesByUser(ctx context.Context, userID string) ([]*entities.Message, error)
		DeleteMessagesByUser(ctx context.Context, userID string) error
	}

	messageRepository struct {
		db *gorm.DB
	}
)

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) AddMessage(ctx context.Context, message *entities.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetMessagesByUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) DeleteMessagesByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.Message{}).Error
}
