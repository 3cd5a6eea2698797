package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

// HandleGetRestaurantLimits returns the live entitlement view: plan, usage,
// limits, features and subscription window. Owners see their own restaurant;
// admins can pass ?restaurant_id= to inspect any tenant. Note that this reads
// the live plan row, so the response can disagree with the session snapshot
// until the owner logs in again.
func HandleGetRestaurantLimits(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var restaurantID uint
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "bad_request",
				"message": "Invalid restaurant id",
			})
		}
		restaurantID = uint(id)
	}

	limits, err := getSubscriptionService().GetRestaurantLimits(userCtx.Actor(), restaurantID)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    limits,
	})
}

// HandleGetSessionPlan returns the entitlement snapshot stored in the
// session. Display data only; it may lag behind the live plan.
func HandleGetSessionPlan(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.Snapshot.Valid() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "No subscription plan in session",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    userCtx.Snapshot,
	})
}
