package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/statistics"
)

// HandleAdminOverview returns the cached platform totals.
func HandleAdminOverview(c *fiber.Ctx) error {
	statistics.UpdateCacheIfNeeded()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    statistics.GetOverview(),
	})
}

// HandleListRestaurants returns restaurants with pagination. Admin only.
func HandleListRestaurants(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	restaurants, err := getRepos().Restaurant.List((page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load restaurants",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    restaurants,
	})
}

// HandleApproveRestaurant flips the admin approval gate for a restaurant.
// Approval also activates the restaurant; it does not touch the subscription
// window or status.
func HandleApproveRestaurant(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid restaurant id",
		})
	}

	approved := c.Query("approved", "true") != "false"
	if err := getRepos().Restaurant.SetApproval(uint(id), approved); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to update restaurant",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Restaurant approval updated",
	})
}

// HandleSweepExpired triggers the subscription expiry sweep manually. The
// sweep is idempotent, so running it on top of the scheduled job is safe.
func HandleSweepExpired(c *fiber.Ctx) error {
	count, err := getSubscriptionService().SweepExpired()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Sweep failed",
			"swept":   count,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"swept":   count,
	})
}
