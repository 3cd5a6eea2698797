package usercontext

// Context and session keys shared between middleware and controllers.
const (
	KeyUserContext = "USER_CONTEXT"

	SessionKeyUserID         = "USER_ID"
	SessionKeyUserName       = "USER_NAME"
	SessionKeyIsAdmin        = "USER_IS_ADMIN"
	SessionKeyRestaurantID   = "RESTAURANT_ID"
	SessionKeyRestaurantName = "RESTAURANT_NAME"
	SessionKeySnapshot       = "SUBSCRIPTION_PLAN"
)
