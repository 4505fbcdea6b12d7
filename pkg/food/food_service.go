package food

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils/storage"
	"foodshare/pkg/user"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, image *multipart.FileHeader, userID string) error
		BrowseItems(ctx context.Context) ([]domain.BrowseItem, error)
		SelectItem(ctx context.Context, req domain.SelectItemRequest) (domain.SelectItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		userRepository user.UserRepository
		uploader       storage.Uploader
	}
)

func NewFoodService(foodRepository FoodRepository, userRepository user.UserRepository, uploader storage.Uploader) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		userRepository: userRepository,
		uploader:       uploader,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, image *multipart.FileHeader, userID string) error {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ErrInvalidExpiryDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	imagePath := ""
	if image != nil {
		imagePath, err = s.uploader.UploadFile(image)
		if err != nil {
			return err
		}
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		ExpiryDate:  expiryDate,
		Status:      req.Status,
		ImagePath:   imagePath,
		Selected:    false,
	}

	return s.foodRepository.AddFoodItem(ctx, foodItem)
}

// BrowseItems returns every listing enriched with its status color and the
// owner's username. Enrichments run concurrently, one per item, and the
// result keeps the store's natural order. A missing owner is not an error;
// the item simply shows "Unknown".
func (s *foodService) BrowseItems(ctx context.Context) ([]domain.BrowseItem, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.BrowseItem, len(foodItems))
	var wg sync.WaitGroup
	for i, foodItem := range foodItems {
		wg.Add(1)
		go func(i int, foodItem *entities.FoodItem) {
			defer wg.Done()

			username := domain.UnknownOwner
			if owner, err := s.userRepository.GetUserByID(ctx, foodItem.UserID.String()); err == nil {
				username = owner.Username
			}

			items[i] = domain.BrowseItem{
				ID:          foodItem.ID.String(),
				Name:        foodItem.Name,
				Description: foodItem.Description,
				Quantity:    foodItem.Quantity,
				ExpiryDate:  foodItem.ExpiryDate,
				Status:      foodItem.Status,
				StatusColor: domain.StatusColor(foodItem.Status),
				ImagePath:   foodItem.ImagePath,
				Username:    username,
			}
		}(i, foodItem)
	}
	wg.Wait()

	return items, nil
}

// SelectItem consumes the requested quantity from a listing. The requested
// amount is not checked against the available stock: a remainder of zero or
// less removes the listing outright.
func (s *foodService) SelectItem(ctx context.Context, req domain.SelectItemRequest) (domain.SelectItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.ItemID)
	if err != nil {
		return domain.SelectItemResponse{}, domain.ErrFoodItemNotFound
	}

	remaining := foodItem.Quantity - req.Quantity
	if remaining <= 0 {
		if err := s.foodRepository.DeleteFoodItem(ctx, req.ItemID); err != nil {
			log.Errorf("error removing fully claimed item %s: %v", req.ItemID, err)
			return domain.SelectItemResponse{}, domain.ErrRemoveFoodItem
		}
		// Best effort; the listing is already gone.
		if err := s.uploader.DeleteFile(foodItem.ImagePath); err != nil {
			log.Errorf("error deleting image for item %s: %v", req.ItemID, err)
		}
		return domain.SelectItemResponse{
			Status:  "removed",
			Message: fmt.Sprintf("All available units of %s were selected and it has been removed from listings.", foodItem.Name),
		}, nil
	}

	if err := s.foodRepository.UpdateQuantity(ctx, req.ItemID, remaining); err != nil {
		log.Errorf("error updating quantity for item %s: %v", req.ItemID, err)
		return domain.SelectItemResponse{}, domain.ErrUpdateQuantity
	}
	return domain.SelectItemResponse{
		Status:  "claimed",
		Message: fmt.Sprintf("%d portions of %s were successfully selected, thank you for helping reduce waste!.", req.Quantity, foodItem.Name),
	}, nil
}
