package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/entitlements"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/session"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

// HandleListPlans returns all active plans, ordered by sort order then price.
func HandleListPlans(c *fiber.Ctx) error {
	plans, err := getSubscriptionService().ListPlans()
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    plans,
	})
}

// HandleGetPlan returns a single active plan.
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid plan id",
		})
	}

	plan, err := getSubscriptionService().GetPlan(uint(id))
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    plan,
	})
}

// HandleCreatePlan creates a new subscription plan. Admin only.
func HandleCreatePlan(c *fiber.Ctx) error {
	var input subscription.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	actor := usercontext.GetUserContext(c).Actor()
	plan, err := getSubscriptionService().CreatePlan(actor, input)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subscription plan created successfully",
		"data":    fiber.Map{"plan_id": plan.ID},
	})
}

// HandleUpdatePlan applies a partial plan update. Admin only.
func HandleUpdatePlan(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid plan id",
		})
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	actor := usercontext.GetUserContext(c).Actor()
	if err := getSubscriptionService().UpdatePlan(actor, uint(id), fields); err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription plan updated successfully",
	})
}

// HandleDeletePlan deletes a plan unless restaurants still reference it.
// Admin only.
func HandleDeletePlan(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid plan id",
		})
	}

	actor := usercontext.GetUserContext(c).Actor()
	if err := getSubscriptionService().DeletePlan(actor, uint(id)); err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription plan deleted successfully",
	})
}

type assignPlanRequest struct {
	RestaurantID uint `json:"restaurant_id"`
	PlanID       uint `json:"plan_id"`
}

// HandleAssignPlan puts a restaurant on a plan, resetting the subscription
// window to start today. Admin only. When the admin assigns a plan to their
// own restaurant, the session snapshot is refreshed in place; other live
// sessions keep their stale snapshot until re-login.
func HandleAssignPlan(c *fiber.Ctx) error {
	var req assignPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	userCtx := usercontext.GetUserContext(c)
	result, err := getSubscriptionService().AssignPlan(userCtx.Actor(), req.RestaurantID, req.PlanID)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	if userCtx.RestaurantID == req.RestaurantID {
		snapshot := entitlements.SnapshotFromPlan(result.Plan)
		if encoded, err := snapshot.Encode(); err == nil {
			_ = session.SetSessionValue(c, usercontext.SessionKeySnapshot, encoded)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription plan assigned successfully",
		"data": fiber.Map{
			"plan":               result.Plan,
			"subscription_start": result.SubscriptionStart.Format("2006-01-02"),
			"subscription_end":   result.SubscriptionEnd.Format("2006-01-02"),
		},
	})
}

type extendSubscriptionRequest struct {
	RestaurantID uint `json:"restaurant_id"`
	Months       int  `json:"months"`
}

// HandleExtendSubscription adds months to a restaurant's subscription end
// date. Admin only.
func HandleExtendSubscription(c *fiber.Ctx) error {
	var req extendSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}
	if req.Months == 0 {
		req.Months = 1
	}

	actor := usercontext.GetUserContext(c).Actor()
	newEnd, err := getSubscriptionService().ExtendSubscription(actor, req.RestaurantID, req.Months)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription extended successfully",
		"data": fiber.Map{
			"new_end_date": newEnd.Format("2006-01-02"),
		},
	})
}
