package subscription

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied is returned from admin-only operations when the
	// acting user lacks the admin role, or from owner-scoped reads when the
	// actor owns neither the restaurant nor the admin role.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPlanNotFound is returned when a plan is missing or inactive.
	ErrPlanNotFound = errors.New("subscription plan not found")

	// ErrRestaurantNotFound is returned when the target restaurant is missing.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrNoUpdateFields is returned by UpdatePlan when the payload contains
	// no recognized fields.
	ErrNoUpdateFields = errors.New("no fields to update")
)

// ValidationError reports a missing or malformed plan field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid plan field %q: %s", e.Field, e.Reason)
}

// PlanInUseError blocks plan deletion and carries the number of restaurants
// still referencing the plan.
type PlanInUseError struct {
	Restaurants int64
}

func (e *PlanInUseError) Error() string {
	return fmt.Sprintf("plan is in use by %d restaurants", e.Restaurants)
}
