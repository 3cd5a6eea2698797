package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

// HandleRestaurantAnalytics returns usage analytics for the caller's
// restaurant. This endpoint is feature-gated: plans without the analytics
// flag are denied regardless of quota usage.
func HandleRestaurantAnalytics(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	svc := getSubscriptionService()
	if !svc.CheckPermission(userCtx.Actor(), subscription.ActionAnalytics) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "feature_disabled",
			"message": subscription.PermissionErrorMessage(subscription.ActionAnalytics),
		})
	}

	usage, err := svc.CurrentUsage(userCtx.RestaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load usage",
		})
	}

	activity, err := getRepos().ActivityLog.GetByRestaurantID(userCtx.RestaurantID, 50)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to load activity",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"usage":           usage,
			"recent_activity": activity,
		},
	})
}
