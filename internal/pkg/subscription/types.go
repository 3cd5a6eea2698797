package subscription

import (
	"time"

	"github.com/KarimAldeen/MenuDeck/app/models"
)

// Action identifies a gated operation. Quota actions compare live resource
// usage against the plan limit; feature actions read a plan flag.
type Action string

const (
	ActionAddCategory Action = "add_category"
	ActionAddItem     Action = "add_item"
	ActionUploadImage Action = "upload_image"

	ActionColorCustomization Action = "color_customization"
	ActionAnalytics          Action = "analytics"
	ActionReviews            Action = "reviews"
	ActionOnlineOrdering     Action = "online_ordering"
	ActionCustomDomain       Action = "custom_domain"
)

// Actor is the caller identity the service checks admin-only operations and
// permission gates against. A zero Actor is an unauthenticated caller.
type Actor struct {
	UserID       uint
	RestaurantID uint
	IsAdmin      bool
}

// Authenticated reports whether the actor is a logged-in user.
func (a Actor) Authenticated() bool {
	return a.UserID != 0
}

// Usage holds the live resource counts for a restaurant. It is computed by
// COUNT queries at call time and never cached.
type Usage struct {
	Categories int64 `json:"categories_count"`
	Items      int64 `json:"items_count"`
	Images     int64 `json:"images_count"`
}

// Limits is the resource cap section of a plan.
type Limits struct {
	MaxCategories int `json:"max_categories"`
	MaxItems      int `json:"max_items"`
	MaxImages     int `json:"max_images"`
}

// Features is the feature flag section of a plan.
type Features struct {
	ColorCustomization bool `json:"color_customization"`
	Analytics          bool `json:"analytics"`
	Reviews            bool `json:"reviews"`
	OnlineOrdering     bool `json:"online_ordering"`
	CustomDomain       bool `json:"custom_domain"`
	PrioritySupport    bool `json:"priority_support"`
}

// RestaurantLimits is the full entitlement view for a restaurant: the live
// plan row, live usage, and the current subscription window state.
type RestaurantLimits struct {
	Plan               *models.SubscriptionPlan `json:"plan"`
	Usage              Usage                    `json:"usage"`
	Limits             Limits                   `json:"limits"`
	Features           Features                 `json:"features"`
	SubscriptionStatus string                   `json:"subscription_status"`
	SubscriptionEnd    *time.Time               `json:"subscription_end"`
}

// AssignResult is returned by AssignPlan with the newly computed window.
type AssignResult struct {
	Plan              *models.SubscriptionPlan `json:"plan"`
	SubscriptionStart time.Time                `json:"subscription_start"`
	SubscriptionEnd   time.Time                `json:"subscription_end"`
}

// PlanInput carries the fields for plan creation. Limits and the Reviews flag
// use pointers so that "not supplied" can be told apart from zero values.
type PlanInput struct {
	Name               string  `json:"name"`
	NameAr             string  `json:"name_ar"`
	Description        string  `json:"description"`
	DescriptionAr      string  `json:"description_ar"`
	Price              *float64 `json:"price"`
	Currency           string  `json:"currency"`
	BillingCycle       string  `json:"billing_cycle"`
	MaxCategories      *int    `json:"max_categories"`
	MaxItems           *int    `json:"max_items"`
	MaxImages          *int    `json:"max_images"`
	ColorCustomization bool    `json:"color_customization"`
	Analytics          bool    `json:"analytics"`
	Reviews            *bool   `json:"reviews"`
	OnlineOrdering     bool    `json:"online_ordering"`
	CustomDomain       bool    `json:"custom_domain"`
	PrioritySupport    bool    `json:"priority_support"`
	IsPopular          bool    `json:"is_popular"`
	SortOrder          int     `json:"sort_order"`
}

func limitsFromPlan(plan *models.SubscriptionPlan) Limits {
	return Limits{
		MaxCategories: plan.MaxCategories,
		MaxItems:      plan.MaxItems,
		MaxImages:     plan.MaxImages,
	}
}

func featuresFromPlan(plan *models.SubscriptionPlan) Features {
	return Features{
		ColorCustomization: plan.ColorCustomization,
		Analytics:          plan.Analytics,
		Reviews:            plan.Reviews,
		OnlineOrdering:     plan.OnlineOrdering,
		CustomDomain:       plan.CustomDomain,
		PrioritySupport:    plan.PrioritySupport,
	}
}
