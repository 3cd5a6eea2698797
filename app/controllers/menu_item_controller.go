package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

type createMenuItemRequest struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	NameAr      string  `json:"name_ar"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SortOrder   int     `json:"sort_order"`
}

// HandleCreateMenuItem creates a menu item after the permission gate allows
// it. The category must belong to the caller's restaurant.
func HandleCreateMenuItem(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	svc := getSubscriptionService()
	if !svc.CheckPermission(userCtx.Actor(), subscription.ActionAddItem) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "quota_exceeded",
			"message": subscription.PermissionErrorMessage(subscription.ActionAddItem),
		})
	}

	var req createMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.NameAr == "" {
		req.NameAr = req.Name
	}

	repos := getRepos()
	category, err := repos.Category.GetByID(req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load category",
		})
	}
	if category.RestaurantID != userCtx.RestaurantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "Category belongs to another restaurant",
		})
	}

	item := &models.MenuItem{
		RestaurantID: userCtx.RestaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		NameAr:       req.NameAr,
		Description:  req.Description,
		Price:        req.Price,
		SortOrder:    req.SortOrder,
		IsAvailable:  true,
	}
	if err := item.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": err.Error(),
		})
	}

	if err := repos.MenuItem.Create(item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to create menu item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// HandleListMenuItems returns the menu items of the caller's restaurant.
func HandleListMenuItems(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	items, err := getRepos().MenuItem.GetByRestaurantID(userCtx.RestaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load menu items",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
