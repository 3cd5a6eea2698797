package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

type createCategoryRequest struct {
	Name        string `json:"name"`
	NameAr      string `json:"name_ar"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// HandleCreateCategory creates a menu category after the permission gate
// allows it. The gate check and the insert are separate store operations, so
// two concurrent requests can both pass and overshoot the quota by one.
func HandleCreateCategory(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	svc := getSubscriptionService()
	if !svc.CheckPermission(userCtx.Actor(), subscription.ActionAddCategory) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "quota_exceeded",
			"message": subscription.PermissionErrorMessage(subscription.ActionAddCategory),
		})
	}

	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.NameAr == "" {
		req.NameAr = req.Name
	}

	category := &models.Category{
		RestaurantID: userCtx.RestaurantID,
		Name:         req.Name,
		NameAr:       req.NameAr,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if err := category.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": err.Error(),
		})
	}

	if err := getRepos().Category.Create(category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

// HandleListCategories returns the categories of the caller's restaurant.
func HandleListCategories(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	categories, err := getRepos().Category.GetByRestaurantID(userCtx.RestaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load categories",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}
