package entities

import (
	"github.com/google/uuid"
	"time"
)

// Message keeps a nullable UserID so anonymous visitors can write in too.
type Message struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Body   string     `gorm:"column:message" json:"message"`
	Date   time.Time  `json:"date"`

	Timestamp
}
