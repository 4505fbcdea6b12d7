package admin

import (
	"context"
	"sync"

	"foodshare/domain"
	"foodshare/entities"
	"foodshare/internal/utils/storage"
	"foodshare/pkg/food"
	"foodshare/pkg/message"
	"foodshare/pkg/user"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

type (
	AdminService interface {
		GetDashboard(ctx context.Context) ([]domain.AdminUserDetail, error)
		RemoveItem(ctx context.Context, itemID string) error
		RemoveUser(ctx context.Context, userID string) error
	}

	adminService struct {
		userRepository    user.UserRepository
		foodRepository    food.FoodRepository
		messageRepository message.MessageRepository
		uploader          storage.Uploader
	}
)

func NewAdminService(userRepository user.UserRepository, foodRepository food.FoodRepository, messageRepository message.MessageRepository, uploader storage.Uploader) AdminService {
	return &adminService{
		userRepository:    userRepository,
		foodRepository:    foodRepository,
		messageRepository: messageRepository,
		uploader:          uploader,
	}
}

// GetDashboard assembles one aggregate per user, fanning out the item and
// message sub-fetches concurrently. A failing sub-fetch degrades to an empty
// list and is logged; only the initial user listing can fail the dashboard.
func (s *adminService) GetDashboard(ctx context.Context) ([]domain.AdminUserDetail, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.AdminUserDetail, len(users))
	var wg sync.WaitGroup
	for i, u := range users {
		wg.Add(1)
		go func(i int, u *entities.User) {
			defer wg.Done()

			var (
				foodItems []*entities.FoodItem
				messages  []*entities.Message
				inner     sync.WaitGroup
			)

			inner.Add(2)
			go func() {
				defer inner.Done()
				items, err := s.foodRepository.GetFoodItemsByUser(ctx, u.ID.String())
				if err != nil {
					log.Errorf("error fetching food items for user %s: %v", u.Username, err)
					items = []*entities.FoodItem{}
				}
				foodItems = items
			}()
			go func() {
				defer inner.Done()
				msgs, err := s.messageRepository.GetMessagesByUser(ctx, u.ID.String())
				if err != nil {
					log.Errorf("error fetching messages for user %s: %v", u.Username, err)
					msgs = []*entities.Message{}
				}
				messages = msgs
			}()
			inner.Wait()

			details[i] = domain.AdminUserDetail{
				User:      u,
				FoodItems: foodItems,
				Messages:  messages,
			}
		}(i, u)
	}
	wg.Wait()

	return details, nil
}

func (s *adminService) RemoveItem(ctx context.Context, itemID string) error {
	item, lookupErr := s.foodRepository.GetFoodItemByID(ctx, itemID)

	if err := s.foodRepository.DeleteFoodItem(ctx, itemID); err != nil {
		return err
	}

	// Best effort; the listing is already gone.
	if lookupErr == nil {
		if err := s.uploader.DeleteFile(item.ImagePath); err != nil {
			log.Errorf("error deleting image for item %s: %v", itemID, err)
		}
	}
	return nil
}

// RemoveUser deletes the user record, then cascades to the user's food items
// and messages concurrently. The cascade is not transactional: when one leg
// fails the user record is already gone and nothing is rolled back.
func (s *adminService) RemoveUser(ctx context.Context, userID string) error {
	// Collected up front so the images can be cleaned up after the rows go.
	items, err := s.foodRepository.GetFoodItemsByUser(ctx, userID)
	if err != nil {
		log.Errorf("error listing food items for user %s: %v", userID, err)
		items = nil
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.foodRepository.DeleteFoodItemsByUser(gctx, userID)
	})
	g.Go(func() error {
		return s.messageRepository.DeleteMessagesByUser(gctx, userID)
	})

	if err := g.Wait(); err != nil {
		return domain.ErrCascadeDelete
	}

	for _, item := range items {
		if err := s.uploader.DeleteFile(item.ImagePath); err != nil {
			log.Errorf("error deleting image for item %s: %v", item.ID, err)
		}
	}
	return nil
}
