package domain

import (
	"errors"
	"time"
)

const (
	StatusFresh      = "Fresh"
	StatusNearExpiry = "Near Expiry"
	StatusDamaged    = "Damaged"
)

var (
	MessageSuccessAddFoodItem = "We appreciate your donation. Please take the goods to Govan Home and Education Link Project. Thank you for supporting the community and reducing waste!"

	MessageFailedFetchItems  = "Error fetching items."
	MessageFailedAddFoodItem = "Error adding item."
	MessageItemNotFound      = "Item not found."
	MessageFailedRemoveItem  = "Failed to remove item."
	MessageFailedUpdateItem  = "Failed to update item quantity."
	MessageSuccessSelectItem = "item selection processed"
	UnknownOwner             = "Unknown"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrRemoveFoodItem    = errors.New("failed to remove food item")
	ErrUpdateQuantity    = errors.New("failed to update item quantity")
)

// StatusColor maps an item status onto the color shown in the browse view.
// Anything outside the known statuses renders grey.
func StatusColor(status string) string {
	switch status {
	case StatusFresh:
		return "green"
	case StatusNearExpiry:
		return "orange"
	case StatusDamaged:
		return "red"
	default:
		return "grey"
	}
}

type (
	AddFoodItemRequest struct {
		Name        string `form:"name" validate:"required"`
		Description string `form:"description"`
		Quantity    int    `form:"quantity" validate:"required,min=1"`
		ExpiryDate  string `form:"expiryDate" validate:"required"`
		Status      string `form:"status" validate:"required"`
	}

	SelectItemRequest struct {
		ItemID   string `form:"itemId" validate:"required"`
		Quantity int    `form:"quantity" validate:"required"`
	}

	// SelectItemResponse tells the browse view what happened to the claim so
	// it can alert the visitor and navigate back to the listings.
	SelectItemResponse struct {
		Status  string `json:"status"` // "claimed" or "removed"
		Message string `json:"message"`
	}

	BrowseItem struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Quantity    int       `json:"quantity"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Status      string    `json:"status"`
		StatusColor string    `json:"status_color"`
		ImagePath   string    `json:"image_path,omitempty"`
		Username    string    `json:"username"`
	}
)
