package domain

import (
	"errors"

	"foodshare/entities"
)

var (
	MessageAccessDenied       = "Access denied. Admins only."
	MessageUnauthorizedAccess = "Unauthorized access."
	MessageFailedFetchUsers   = "Error fetching users."
	MessageFailedRemoveUser   = "Failed to remove user."
	MessageFailedRemoveLinked = "Failed to remove associated data."

	MessageItemRemoved = "Item removed"
	MessageUserRemoved = "User and all associated data removed"

	ErrCascadeDelete = errors.New("failed to remove associated data")
)

// AdminUserDetail is the per-user aggregate rendered on the dashboard.
type AdminUserDetail struct {
	User      *entities.User       `json:"user"`
	FoodItems []*entities.FoodItem `json:"food_items"`
	Messages  []*entities.Message  `json:"messages"`
}

type (
	RemoveItemRequest struct {
		ItemID string `form:"itemId" validate:"required"`
	}

	RemoveUserRequest struct {
		UserID string `form:"userId" validate:"required"`
	}
)
