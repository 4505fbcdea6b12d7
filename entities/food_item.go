package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Status      string    `json:"status"` // "Fresh", "Near Expiry", "Damaged"
	ImagePath   string    `json:"image_path,omitempty"`
	Selected    bool      `json:"selected"`

	Timestamp
}
