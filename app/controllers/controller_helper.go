package controllers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/app/repository"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/database"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
)

var (
	subscriptionService *subscription.Service
	subscriptionOnce    sync.Once
)

// getSubscriptionService returns the shared subscription service bound to the
// global database handle.
func getSubscriptionService() *subscription.Service {
	subscriptionOnce.Do(func() {
		subscriptionService = subscription.NewServiceFromDB(database.GetDB())
	})
	return subscriptionService
}

// subscriptionErrorResponse maps subscription service errors to HTTP responses.
func subscriptionErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *subscription.ValidationError
	var inUseErr *subscription.PlanInUseError

	switch {
	case errors.Is(err, subscription.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "You do not have permission to perform this action",
		})
	case errors.Is(err, subscription.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Subscription plan not found",
		})
	case errors.Is(err, subscription.ErrRestaurantNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Restaurant not found",
		})
	case errors.Is(err, subscription.ErrNoUpdateFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "No fields to update",
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": validationErr.Error(),
			"field":   validationErr.Field,
		})
	case errors.As(err, &inUseErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":       "conflict",
			"message":     fmt.Sprintf("This plan cannot be deleted because it is used by %d restaurants", inUseErr.Restaurants),
			"restaurants": inUseErr.Restaurants,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Something went wrong",
		})
	}
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases a name and replaces everything outside [a-z0-9] with
// hyphens. Non-latin names collapse to an empty string; callers fall back to
// a generated value in that case.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug probes the store with numeric suffixes until a free slug is found.
func uniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	if base == "" {
		base = "restaurant"
	}
	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// getRepos is a shorthand for the global repositories bundle.
func getRepos() *repository.Repositories {
	return repository.GetGlobalRepositories()
}
