package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/entitlements"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/session"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request
// This centralizes user session handling and eliminates code duplication
func UserContextMiddleware(c *fiber.Ctx) error {
	// Get session with error handling
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: set as anonymous user
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		return c.Next()
	}

	// Get user ID from session
	userID := sess.Get(usercontext.SessionKeyUserID)
	if userID == nil {
		// Anonymous user - no session data
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		return c.Next()
	}

	// User is logged in - collect session data
	username := session.GetSessionValue(c, usercontext.SessionKeyUserName)
	isAdmin := sess.Get(usercontext.SessionKeyIsAdmin)

	var restaurantID uint
	if v, ok := sess.Get(usercontext.SessionKeyRestaurantID).(uint); ok {
		restaurantID = v
	}
	restaurantName := session.GetSessionValue(c, usercontext.SessionKeyRestaurantName)

	// The entitlement snapshot was written at login. A decode failure leaves
	// a zero snapshot; display falls back to nothing, enforcement is not
	// affected because the gate never reads it.
	snapshot, _ := entitlements.DecodeSnapshot(
		session.GetSessionValue(c, usercontext.SessionKeySnapshot))

	userCtx := usercontext.UserContext{
		UserID:         userID.(uint),
		Username:       username,
		IsLoggedIn:     true,
		IsAdmin:        isAdmin != nil && isAdmin.(bool),
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Snapshot:       snapshot,
	}
	c.Locals(usercontext.KeyUserContext, userCtx)

	return c.Next()
}
