package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"gorm.io/gorm"
)

// DefaultCurrency is used when plan creation does not supply a currency.
const DefaultCurrency = "USD"

// Service implements the subscription governance engine: the plan catalog,
// the permission gate, the plan lifecycle (assignment, extension, expiry
// sweep) and the per-restaurant limits view.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a subscription service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceFromDB creates a subscription service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// today truncates the service clock to a calendar date. Subscription windows
// are date-granular.
func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ListPlans returns all active plans ordered by sort order, then price.
func (s *Service) ListPlans() ([]models.SubscriptionPlan, error) {
	return s.repo.ListActivePlans()
}

// GetPlan returns an active plan or ErrPlanNotFound.
func (s *Service) GetPlan(id uint) (*models.SubscriptionPlan, error) {
	plan, err := s.repo.GetActivePlan(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// CreatePlan validates the input and inserts a new plan. Admin only.
func (s *Service) CreatePlan(actor Actor, input PlanInput) (*models.SubscriptionPlan, error) {
	if !actor.IsAdmin {
		return nil, ErrPermissionDenied
	}
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	cycle := strings.TrimSpace(input.BillingCycle)
	if cycle == "" {
		cycle = models.BillingCycleMonthly
	}
	reviews := true
	if input.Reviews != nil {
		reviews = *input.Reviews
	}

	plan := &models.SubscriptionPlan{
		Name:               input.Name,
		NameAr:             input.NameAr,
		Description:        input.Description,
		DescriptionAr:      input.DescriptionAr,
		Price:              *input.Price,
		Currency:           currency,
		BillingCycle:       cycle,
		MaxCategories:      *input.MaxCategories,
		MaxItems:           *input.MaxItems,
		MaxImages:          *input.MaxImages,
		ColorCustomization: input.ColorCustomization,
		Analytics:          input.Analytics,
		Reviews:            reviews,
		OnlineOrdering:     input.OnlineOrdering,
		CustomDomain:       input.CustomDomain,
		PrioritySupport:    input.PrioritySupport,
		IsPopular:          input.IsPopular,
		SortOrder:          input.SortOrder,
		IsActive:           true,
	}

	if err := s.repo.CreatePlan(plan); err != nil {
		return nil, err
	}

	s.logActivity(actor, nil, models.ActivityPlanCreated,
		fmt.Sprintf("Subscription plan created: %s", plan.Name))

	return plan, nil
}

// planUpdateWhitelist lists the columns a partial plan update may touch.
var planUpdateWhitelist = map[string]struct{}{
	"name": {}, "name_ar": {}, "description": {}, "description_ar": {},
	"price": {}, "currency": {}, "billing_cycle": {},
	"max_categories": {}, "max_items": {}, "max_images": {},
	"color_customization": {}, "analytics": {}, "reviews": {},
	"online_ordering": {}, "custom_domain": {}, "priority_support": {},
	"is_popular": {}, "sort_order": {}, "is_active": {},
}

// UpdatePlan applies a whitelist-filtered partial update. Admin only.
func (s *Service) UpdatePlan(actor Actor, id uint, fields map[string]interface{}) error {
	if !actor.IsAdmin {
		return ErrPermissionDenied
	}
	if _, err := s.repo.GetPlan(id); err != nil {
		return ErrPlanNotFound
	}

	update := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if _, ok := planUpdateWhitelist[key]; ok {
			update[key] = value
		}
	}
	if len(update) == 0 {
		return ErrNoUpdateFields
	}
	if err := validatePlanUpdate(update); err != nil {
		return err
	}

	if err := s.repo.UpdatePlanFields(id, update); err != nil {
		return err
	}

	s.logActivity(actor, nil, models.ActivityPlanUpdated,
		fmt.Sprintf("Subscription plan updated: %d", id))

	return nil
}

// DeletePlan removes a plan. It fails with PlanInUseError while any
// restaurant still references the plan. Admin only.
func (s *Service) DeletePlan(actor Actor, id uint) error {
	if !actor.IsAdmin {
		return ErrPermissionDenied
	}
	plan, err := s.repo.GetPlan(id)
	if err != nil {
		return ErrPlanNotFound
	}

	count, err := s.repo.CountRestaurantsOnPlan(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &PlanInUseError{Restaurants: count}
	}

	if err := s.repo.DeletePlan(id); err != nil {
		return err
	}

	s.logActivity(actor, nil, models.ActivityPlanDeleted,
		fmt.Sprintf("Subscription plan deleted: %s", plan.Name))

	return nil
}

// AssignPlan puts a restaurant on a plan. The subscription window always
// starts today; remaining time on the previous plan is discarded. The plan
// reference, window and status change in a single UPDATE. Admin only.
func (s *Service) AssignPlan(actor Actor, restaurantID, planID uint) (*AssignResult, error) {
	if !actor.IsAdmin {
		return nil, ErrPermissionDenied
	}

	plan, err := s.repo.GetActivePlan(planID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if _, err := s.repo.GetRestaurant(restaurantID); err != nil {
		return nil, ErrRestaurantNotFound
	}

	start := s.today()
	end := plan.SubscriptionTerm(start)

	err = s.repo.UpdateRestaurantSubscription(restaurantID, map[string]interface{}{
		"subscription_plan_id": plan.ID,
		"subscription_start":   start,
		"subscription_end":     end,
		"subscription_status":  models.SubscriptionStatusActive,
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(actor, &restaurantID, models.ActivityPlanAssigned,
		fmt.Sprintf("Subscription plan assigned: %s", plan.Name))

	return &AssignResult{
		Plan:              plan,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
	}, nil
}

// ExtendSubscription adds months to the current subscription end date. The
// extension is additive, not reset to today. It also forces the subscription
// back to active and re-enables the restaurant, even if an admin previously
// suspended it. Admin only.
func (s *Service) ExtendSubscription(actor Actor, restaurantID uint, months int) (time.Time, error) {
	if !actor.IsAdmin {
		return time.Time{}, ErrPermissionDenied
	}
	if months <= 0 {
		return time.Time{}, &ValidationError{Field: "months", Reason: "must be a positive number"}
	}

	restaurant, err := s.repo.GetRestaurant(restaurantID)
	if err != nil {
		return time.Time{}, ErrRestaurantNotFound
	}

	currentEnd := s.today()
	if restaurant.SubscriptionEnd != nil {
		currentEnd = *restaurant.SubscriptionEnd
	}
	newEnd := currentEnd.AddDate(0, months, 0)

	err = s.repo.UpdateRestaurantSubscription(restaurantID, map[string]interface{}{
		"subscription_end":    newEnd,
		"subscription_status": models.SubscriptionStatusActive,
		"is_active":           true,
	})
	if err != nil {
		return time.Time{}, err
	}

	s.logActivity(actor, &restaurantID, models.ActivitySubscriptionExtended,
		fmt.Sprintf("Subscription extended by %d months", months))

	return newEnd, nil
}

// SweepExpired transitions every restaurant whose active subscription window
// elapsed before today to expired and deactivates it. The selection predicate
// already excludes restaurants in expired status, so running the sweep again
// is a no-op.
func (s *Service) SweepExpired() (int, error) {
	expired, err := s.repo.ListExpiredRestaurants(s.today())
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, restaurant := range expired {
		err := s.repo.UpdateRestaurantSubscription(restaurant.ID, map[string]interface{}{
			"subscription_status": models.SubscriptionStatusExpired,
			"is_active":           false,
		})
		if err != nil {
			return swept, err
		}

		restaurantID := restaurant.ID
		s.logActivity(Actor{}, &restaurantID, models.ActivitySubscriptionExpired,
			"Subscription expired")
		swept++
	}

	return swept, nil
}

// CheckPermission decides whether a restaurant may perform an action. It
// re-fetches the live plan row and live usage on every call and never reads
// the session's entitlement snapshot, so a stale session cannot bypass quota
// enforcement. Any lookup failure is treated as a deny; the gate never
// returns an error to its caller.
//
// Known gap: the usage read and the caller's subsequent insert are not tied
// by a transaction, so two concurrent requests can both pass usage < limit
// and overshoot by one.
func (s *Service) CheckPermission(actor Actor, action Action) bool {
	if !actor.Authenticated() || actor.RestaurantID == 0 {
		return false
	}

	restaurant, err := s.repo.GetRestaurantWithPlan(actor.RestaurantID)
	if err != nil || restaurant.Plan == nil {
		return false
	}
	plan := restaurant.Plan

	switch action {
	case ActionAddCategory, ActionAddItem, ActionUploadImage:
		usage, err := s.repo.CountUsage(actor.RestaurantID)
		if err != nil {
			return false
		}
		switch action {
		case ActionAddCategory:
			return withinQuota(plan.MaxCategories, usage.Categories)
		case ActionAddItem:
			return withinQuota(plan.MaxItems, usage.Items)
		default:
			return withinQuota(plan.MaxImages, usage.Images)
		}

	case ActionColorCustomization, ActionAnalytics, ActionReviews,
		ActionOnlineOrdering, ActionCustomDomain:
		return plan.HasFeature(string(action))

	default:
		// Unknown actions are not subscription-gated.
		return true
	}
}

// GetRestaurantLimits returns the live entitlement view for a restaurant.
// Accessible to the owning user and to admins. A restaurantID of zero falls
// back to the actor's own restaurant.
func (s *Service) GetRestaurantLimits(actor Actor, restaurantID uint) (*RestaurantLimits, error) {
	if !actor.Authenticated() {
		return nil, ErrPermissionDenied
	}
	if restaurantID == 0 {
		restaurantID = actor.RestaurantID
	}
	if restaurantID == 0 {
		return nil, ErrRestaurantNotFound
	}

	restaurant, err := s.repo.GetRestaurantWithPlan(restaurantID)
	if err != nil || restaurant.Plan == nil {
		return nil, ErrRestaurantNotFound
	}
	if !actor.IsAdmin && restaurant.UserID != actor.UserID {
		return nil, ErrPermissionDenied
	}

	usage, err := s.repo.CountUsage(restaurantID)
	if err != nil {
		return nil, err
	}

	return &RestaurantLimits{
		Plan:               restaurant.Plan,
		Usage:              usage,
		Limits:             limitsFromPlan(restaurant.Plan),
		Features:           featuresFromPlan(restaurant.Plan),
		SubscriptionStatus: restaurant.SubscriptionStatus,
		SubscriptionEnd:    restaurant.SubscriptionEnd,
	}, nil
}

// CurrentUsage returns the live resource counts for a restaurant.
func (s *Service) CurrentUsage(restaurantID uint) (Usage, error) {
	return s.repo.CountUsage(restaurantID)
}

func withinQuota(limit int, used int64) bool {
	return limit == models.UnlimitedLimit || used < int64(limit)
}

// logActivity writes an audit row; failures are ignored so bookkeeping never
// blocks the primary operation.
func (s *Service) logActivity(actor Actor, restaurantID *uint, action, description string) {
	entry := &models.ActivityLog{
		RestaurantID: restaurantID,
		Action:       action,
		Description:  description,
	}
	if actor.UserID != 0 {
		userID := actor.UserID
		entry.UserID = &userID
	}
	_ = s.repo.LogActivity(entry)
}

func validatePlanInput(input PlanInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(input.NameAr) == "" {
		return &ValidationError{Field: "name_ar", Reason: "is required"}
	}
	if input.Price == nil {
		return &ValidationError{Field: "price", Reason: "is required"}
	}
	if *input.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	limits := map[string]*int{
		"max_categories": input.MaxCategories,
		"max_items":      input.MaxItems,
		"max_images":     input.MaxImages,
	}
	for _, field := range []string{"max_categories", "max_items", "max_images"} {
		value := limits[field]
		if value == nil {
			return &ValidationError{Field: field, Reason: "is required"}
		}
		if *value < models.UnlimitedLimit {
			return &ValidationError{Field: field, Reason: "must be -1 (unlimited) or a non-negative number"}
		}
	}
	if cycle := strings.TrimSpace(input.BillingCycle); cycle != "" &&
		cycle != models.BillingCycleMonthly && cycle != models.BillingCycleYearly {
		return &ValidationError{Field: "billing_cycle", Reason: "must be monthly or yearly"}
	}
	return nil
}

// validatePlanUpdate checks the numeric fields of a partial update. JSON
// payloads decode numbers as float64, so both forms are accepted.
func validatePlanUpdate(fields map[string]interface{}) error {
	for _, field := range []string{"price", "max_categories", "max_items", "max_images"} {
		value, ok := fields[field]
		if !ok {
			continue
		}
		var n float64
		switch v := value.(type) {
		case float64:
			n = v
		case int:
			n = float64(v)
		default:
			return &ValidationError{Field: field, Reason: "must be a number"}
		}
		if field == "price" {
			if n < 0 {
				return &ValidationError{Field: field, Reason: "must not be negative"}
			}
		} else if n < models.UnlimitedLimit {
			return &ValidationError{Field: field, Reason: "must be -1 (unlimited) or a non-negative number"}
		}
	}
	if value, ok := fields["billing_cycle"]; ok {
		cycle, _ := value.(string)
		if cycle != models.BillingCycleMonthly && cycle != models.BillingCycleYearly {
			return &ValidationError{Field: "billing_cycle", Reason: "must be monthly or yearly"}
		}
	}
	return nil
}
