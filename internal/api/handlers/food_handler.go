package handlers

import (
	"errors"
	"net/url"
	"time"

	"foodshare/domain"
	"foodshare/internal/api/presenters"
	"foodshare/pkg/food"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		BrowsePage(c *fiber.Ctx) error
		AddItemsPage(c *fiber.Ctx) error
		AddFoodItem(c *fiber.Ctx) error
		SelectItem(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) BrowsePage(c *fiber.Ctx) error {
	items, err := h.foodService.BrowseItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedFetchItems)
	}
	return c.Render("browse", fiber.Map{"items": items})
}

func (h *foodHandler) AddItemsPage(c *fiber.Ctx) error {
	return c.Render("addItems", fiber.Map{
		"todayDate":      time.Now().Format("2006-01-02"),
		"successMessage": c.Query("success"),
	})
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedAddFoodItem)
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(domain.MessageFailedAddFoodItem)
	}

	// The image is optional; a missing file stores an empty path.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if err := h.foodService.AddFoodItem(c.Context(), *req, image, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedAddFoodItem)
	}

	return c.Redirect("/addItems?success=" + url.QueryEscape(domain.MessageSuccessAddFoodItem))
}

func (h *foodHandler) SelectItem(c *fiber.Ctx) error {
	req := new(domain.SelectItemRequest)

	// Parse and validation detail stays out of the response body.
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}

	res, err := h.foodService.SelectItem(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageItemNotFound)
		case errors.Is(err, domain.ErrRemoveFoodItem):
			return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedRemoveItem)
		default:
			return c.Status(fiber.StatusInternalServerError).SendString(domain.MessageFailedUpdateItem)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSelectItem)
}
