package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/entitlements"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
)

// UserContext represents the complete user context for a request. Snapshot is
// the session-cached plan copy taken at login; it is display data only and is
// never consulted for permission decisions.
type UserContext struct {
	UserID         uint                  `json:"user_id"`
	Username       string                `json:"username"`
	IsLoggedIn     bool                  `json:"is_logged_in"`
	IsAdmin        bool                  `json:"is_admin"`
	RestaurantID   uint                  `json:"restaurant_id"`
	RestaurantName string                `json:"restaurant_name"`
	Snapshot       entitlements.Snapshot `json:"subscription_plan"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserContext); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}

// GetRestaurantID returns the current user's restaurant ID, or 0 if none
func GetRestaurantID(c *fiber.Ctx) uint {
	return GetUserContext(c).RestaurantID
}

// Actor converts the request context into the identity the subscription
// service checks permissions against.
func (u UserContext) Actor() subscription.Actor {
	if !u.IsLoggedIn {
		return subscription.Actor{}
	}
	return subscription.Actor{
		UserID:       u.UserID,
		RestaurantID: u.RestaurantID,
		IsAdmin:      u.IsAdmin,
	}
}
