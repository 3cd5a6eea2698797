package subscription

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarimAldeen/MenuDeck/app/models"
)

// fakeRepo is an in-memory Repository with switchable failure points.
type fakeRepo struct {
	plans       map[uint]*models.SubscriptionPlan
	restaurants map[uint]*models.Restaurant
	usage       map[uint]Usage
	activities  []models.ActivityLog

	failRestaurant bool
	failUsage      bool
	failUpdate     bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		plans:       make(map[uint]*models.SubscriptionPlan),
		restaurants: make(map[uint]*models.Restaurant),
		usage:       make(map[uint]Usage),
	}
}

var errStore = errors.New("store unavailable")

func (f *fakeRepo) ListActivePlans() ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	for _, p := range f.plans {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetActivePlan(id uint) (*models.SubscriptionPlan, error) {
	p, ok := f.plans[id]
	if !ok || !p.IsActive {
		return nil, errStore
	}
	return p, nil
}

func (f *fakeRepo) GetPlan(id uint) (*models.SubscriptionPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, errStore
	}
	return p, nil
}

func (f *fakeRepo) CreatePlan(plan *models.SubscriptionPlan) error {
	plan.ID = uint(len(f.plans) + 1)
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeRepo) UpdatePlanFields(id uint, fields map[string]interface{}) error {
	p, ok := f.plans[id]
	if !ok {
		return errStore
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := fields["max_items"]; ok {
		switch n := v.(type) {
		case float64:
			p.MaxItems = int(n)
		case int:
			p.MaxItems = n
		}
	}
	return nil
}

func (f *fakeRepo) DeletePlan(id uint) error {
	delete(f.plans, id)
	return nil
}

func (f *fakeRepo) CountRestaurantsOnPlan(planID uint) (int64, error) {
	var count int64
	for _, r := range f.restaurants {
		if r.SubscriptionPlanID == planID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetRestaurant(id uint) (*models.Restaurant, error) {
	if f.failRestaurant {
		return nil, errStore
	}
	r, ok := f.restaurants[id]
	if !ok {
		return nil, errStore
	}
	return r, nil
}

func (f *fakeRepo) GetRestaurantWithPlan(id uint) (*models.Restaurant, error) {
	r, err := f.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	r.Plan = f.plans[r.SubscriptionPlanID]
	return r, nil
}

func (f *fakeRepo) UpdateRestaurantSubscription(id uint, fields map[string]interface{}) error {
	if f.failUpdate {
		return errStore
	}
	r, ok := f.restaurants[id]
	if !ok {
		return errStore
	}
	if v, ok := fields["subscription_plan_id"]; ok {
		r.SubscriptionPlanID = v.(uint)
	}
	if v, ok := fields["subscription_start"]; ok {
		start := v.(time.Time)
		r.SubscriptionStart = &start
	}
	if v, ok := fields["subscription_end"]; ok {
		end := v.(time.Time)
		r.SubscriptionEnd = &end
	}
	if v, ok := fields["subscription_status"]; ok {
		r.SubscriptionStatus = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		r.IsActive = v.(bool)
	}
	return nil
}

func (f *fakeRepo) ListExpiredRestaurants(today time.Time) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range f.restaurants {
		if r.SubscriptionStatus == models.SubscriptionStatusActive &&
			r.SubscriptionEnd != nil && r.SubscriptionEnd.Before(today) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountUsage(restaurantID uint) (Usage, error) {
	if f.failUsage {
		return Usage{}, errStore
	}
	return f.usage[restaurantID], nil
}

func (f *fakeRepo) LogActivity(entry *models.ActivityLog) error {
	f.activities = append(f.activities, *entry)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newTestService pins the service clock so window math is deterministic.
func newTestService(repo *fakeRepo, today time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return today }
	return svc
}

func seedPlan(repo *fakeRepo, id uint, mutate func(*models.SubscriptionPlan)) *models.SubscriptionPlan {
	plan := &models.SubscriptionPlan{
		ID:            id,
		Name:          fmt.Sprintf("Plan %d", id),
		NameAr:        fmt.Sprintf("خطة %d", id),
		Currency:      "USD",
		BillingCycle:  models.BillingCycleMonthly,
		MaxCategories: 5,
		MaxItems:      10,
		MaxImages:     5,
		Reviews:       true,
		IsActive:      true,
	}
	if mutate != nil {
		mutate(plan)
	}
	repo.plans[id] = plan
	return plan
}

func seedRestaurant(repo *fakeRepo, id, userID, planID uint) *models.Restaurant {
	r := &models.Restaurant{
		ID:                 id,
		UserID:             userID,
		Name:               fmt.Sprintf("Restaurant %d", id),
		SubscriptionPlanID: planID,
		SubscriptionStatus: models.SubscriptionStatusActive,
		IsActive:           true,
	}
	repo.restaurants[id] = r
	return r
}

var (
	admin = Actor{UserID: 99, IsAdmin: true}
	owner = Actor{UserID: 7, RestaurantID: 1}
)

func TestCheckPermission_ItemQuota(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, func(p *models.SubscriptionPlan) { p.MaxItems = 3 })
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	// Three inserts fit, the fourth is blocked.
	for used := int64(0); used < 3; used++ {
		repo.usage[1] = Usage{Items: used}
		assert.True(t, svc.CheckPermission(owner, ActionAddItem), "usage %d should pass", used)
	}
	repo.usage[1] = Usage{Items: 3}
	assert.False(t, svc.CheckPermission(owner, ActionAddItem))
	assert.Equal(t,
		"You have reached the maximum number of menu items allowed by your current plan",
		PermissionErrorMessage(ActionAddItem))
}

func TestCheckPermission_UnlimitedLimit(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, func(p *models.SubscriptionPlan) { p.MaxItems = models.UnlimitedLimit })
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	for _, used := range []int64{0, 100, 100000} {
		repo.usage[1] = Usage{Items: used}
		assert.True(t, svc.CheckPermission(owner, ActionAddItem), "unlimited plan denied at usage %d", used)
	}
}

func TestCheckPermission_ZeroLimitBlocksFirstInsert(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, func(p *models.SubscriptionPlan) { p.MaxCategories = 0 })
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	assert.False(t, svc.CheckPermission(owner, ActionAddCategory))
}

func TestCheckPermission_FeatureFlags(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, func(p *models.SubscriptionPlan) {
		p.Analytics = true
		p.Reviews = false
	})
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	assert.True(t, svc.CheckPermission(owner, ActionAnalytics))
	// Feature denial is independent of usage.
	assert.False(t, svc.CheckPermission(owner, ActionReviews))
	assert.False(t, svc.CheckPermission(owner, ActionOnlineOrdering))
}

func TestCheckPermission_FailsClosed(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	repo.failUsage = true
	assert.False(t, svc.CheckPermission(owner, ActionAddItem))

	repo.failUsage = false
	repo.failRestaurant = true
	assert.False(t, svc.CheckPermission(owner, ActionAddItem))
	assert.False(t, svc.CheckPermission(owner, ActionAnalytics))
}

func TestCheckPermission_AnonymousDenied(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	assert.False(t, svc.CheckPermission(Actor{}, ActionAddItem))
	assert.False(t, svc.CheckPermission(Actor{UserID: 7}, ActionAddItem))
}

func TestCheckPermission_UnknownActionAllowed(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	assert.True(t, svc.CheckPermission(owner, Action("export_menu")))
}

func TestAssignPlan_ResetsWindowFromToday(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedPlan(repo, 2, func(p *models.SubscriptionPlan) { p.BillingCycle = models.BillingCycleYearly })
	seedRestaurant(repo, 1, 7, 1)

	svc := newTestService(repo, date(2026, 3, 10))
	res, err := svc.AssignPlan(admin, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 10), res.SubscriptionStart)
	assert.Equal(t, date(2026, 4, 10), res.SubscriptionEnd)

	// Reassigning mid-term discards the remaining window and restarts from
	// the new day, sized by the new plan's cycle.
	svc.now = func() time.Time { return date(2026, 3, 20) }
	res, err = svc.AssignPlan(admin, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 20), res.SubscriptionStart)
	assert.Equal(t, date(2027, 3, 20), res.SubscriptionEnd)

	r := repo.restaurants[1]
	assert.Equal(t, uint(2), r.SubscriptionPlanID)
	assert.Equal(t, models.SubscriptionStatusActive, r.SubscriptionStatus)
	require.NotNil(t, r.SubscriptionEnd)
	assert.Equal(t, date(2027, 3, 20), *r.SubscriptionEnd)
}

func TestAssignPlan_ReactivatesExpiredSubscription(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	r := seedRestaurant(repo, 1, 7, 1)
	r.SubscriptionStatus = models.SubscriptionStatusExpired

	svc := newTestService(repo, date(2026, 3, 10))
	_, err := svc.AssignPlan(admin, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, r.SubscriptionStatus)
}

func TestAssignPlan_Errors(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedPlan(repo, 2, func(p *models.SubscriptionPlan) { p.IsActive = false })
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	_, err := svc.AssignPlan(owner, 1, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.AssignPlan(admin, 1, 42)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Inactive plans cannot be assigned.
	_, err = svc.AssignPlan(admin, 1, 2)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.AssignPlan(admin, 42, 1)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExtendSubscription_Additive(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	r := seedRestaurant(repo, 1, 7, 1)
	end := date(2026, 6, 15)
	r.SubscriptionEnd = &end
	r.SubscriptionStatus = models.SubscriptionStatusSuspended
	r.IsActive = false

	svc := newTestService(repo, date(2026, 3, 10))
	newEnd, err := svc.ExtendSubscription(admin, 1, 2)
	require.NoError(t, err)

	// Extension stacks on the current end date instead of resetting to today,
	// and lifts a suspension.
	assert.Equal(t, date(2026, 8, 15), newEnd)
	assert.Equal(t, models.SubscriptionStatusActive, r.SubscriptionStatus)
	assert.True(t, r.IsActive)
}

func TestExtendSubscription_NoEndDateStartsToday(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedRestaurant(repo, 1, 7, 1)

	svc := newTestService(repo, date(2026, 3, 10))
	newEnd, err := svc.ExtendSubscription(admin, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 4, 10), newEnd)
}

func TestExtendSubscription_Validation(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	for _, months := range []int{0, -3} {
		_, err := svc.ExtendSubscription(admin, 1, months)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "months", verr.Field)
	}

	_, err := svc.ExtendSubscription(owner, 1, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.ExtendSubscription(admin, 42, 1)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestSweepExpired(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)

	overdue := date(2026, 3, 1)
	today := date(2026, 3, 10)
	future := date(2026, 4, 1)

	r1 := seedRestaurant(repo, 1, 7, 1)
	r1.SubscriptionEnd = &overdue
	r2 := seedRestaurant(repo, 2, 8, 1)
	r2.SubscriptionEnd = &future
	// Ends exactly today: still inside the window.
	r3 := seedRestaurant(repo, 3, 9, 1)
	r3.SubscriptionEnd = &today
	r4 := seedRestaurant(repo, 4, 10, 1)
	r4.SubscriptionEnd = &overdue
	r4.SubscriptionStatus = models.SubscriptionStatusSuspended

	svc := newTestService(repo, today)
	swept, err := svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	assert.Equal(t, models.SubscriptionStatusExpired, r1.SubscriptionStatus)
	assert.False(t, r1.IsActive)
	assert.Equal(t, models.SubscriptionStatusActive, r2.SubscriptionStatus)
	assert.Equal(t, models.SubscriptionStatusActive, r3.SubscriptionStatus)
	// Suspended restaurants are not the sweep's business.
	assert.Equal(t, models.SubscriptionStatusSuspended, r4.SubscriptionStatus)

	// The predicate excludes already-expired rows, so a second run is a no-op.
	swept, err = svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}

func TestSweepExpired_AbortsOnUpdateFailure(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	overdue := date(2026, 3, 1)
	r := seedRestaurant(repo, 1, 7, 1)
	r.SubscriptionEnd = &overdue

	svc := newTestService(repo, date(2026, 3, 10))
	repo.failUpdate = true

	swept, err := svc.SweepExpired()
	require.Error(t, err)
	assert.Equal(t, 0, swept)
	assert.Equal(t, models.SubscriptionStatusActive, r.SubscriptionStatus)

	// The row still matches the predicate, so the next run picks it up.
	repo.failUpdate = false
	swept, err = svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestSweepExpired_LogsActivity(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	overdue := date(2026, 3, 1)
	r := seedRestaurant(repo, 1, 7, 1)
	r.SubscriptionEnd = &overdue

	svc := newTestService(repo, date(2026, 3, 10))
	_, err := svc.SweepExpired()
	require.NoError(t, err)

	require.Len(t, repo.activities, 1)
	assert.Equal(t, models.ActivitySubscriptionExpired, repo.activities[0].Action)
	require.NotNil(t, repo.activities[0].RestaurantID)
	assert.Equal(t, uint(1), *repo.activities[0].RestaurantID)
}

func TestCreatePlan(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, date(2026, 3, 10))

	price := 9.99
	three := 3
	input := PlanInput{
		Name:          "Basic",
		NameAr:        "أساسي",
		Price:         &price,
		MaxCategories: &three,
		MaxItems:      &three,
		MaxImages:     &three,
	}

	plan, err := svc.CreatePlan(admin, input)
	require.NoError(t, err)
	assert.Equal(t, "USD", plan.Currency)
	assert.Equal(t, models.BillingCycleMonthly, plan.BillingCycle)
	assert.True(t, plan.Reviews)
	assert.True(t, plan.IsActive)

	_, err = svc.CreatePlan(owner, input)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreatePlan_Validation(t *testing.T) {
	price := 9.99
	negative := -2.0
	three := 3
	badLimit := -2
	reviews := false

	valid := func() PlanInput {
		return PlanInput{
			Name:          "Basic",
			NameAr:        "أساسي",
			Price:         &price,
			MaxCategories: &three,
			MaxItems:      &three,
			MaxImages:     &three,
			Reviews:       &reviews,
		}
	}

	tests := []struct {
		name   string
		mutate func(*PlanInput)
		field  string
	}{
		{"missing name", func(in *PlanInput) { in.Name = "  " }, "name"},
		{"missing arabic name", func(in *PlanInput) { in.NameAr = "" }, "name_ar"},
		{"missing price", func(in *PlanInput) { in.Price = nil }, "price"},
		{"negative price", func(in *PlanInput) { in.Price = &negative }, "price"},
		{"missing item limit", func(in *PlanInput) { in.MaxItems = nil }, "max_items"},
		{"limit below sentinel", func(in *PlanInput) { in.MaxImages = &badLimit }, "max_images"},
		{"bad billing cycle", func(in *PlanInput) { in.BillingCycle = "weekly" }, "billing_cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, date(2026, 3, 10))

			input := valid()
			tt.mutate(&input)

			_, err := svc.CreatePlan(admin, input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	// Explicit reviews=false survives the default.
	repo := newFakeRepo()
	svc := newTestService(repo, date(2026, 3, 10))
	input := valid()
	plan, err := svc.CreatePlan(admin, input)
	require.NoError(t, err)
	assert.False(t, plan.Reviews)
}

func TestUpdatePlan(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	svc := newTestService(repo, date(2026, 3, 10))

	err := svc.UpdatePlan(admin, 1, map[string]interface{}{
		"name":      "Pro",
		"price":     19.99,
		"max_items": float64(25),
		"id":        uint(9), // not whitelisted, must be dropped
	})
	require.NoError(t, err)
	assert.Equal(t, "Pro", repo.plans[1].Name)
	assert.Equal(t, 19.99, repo.plans[1].Price)
	assert.Equal(t, 25, repo.plans[1].MaxItems)
	assert.Equal(t, uint(1), repo.plans[1].ID)
}

func TestUpdatePlan_Errors(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	svc := newTestService(repo, date(2026, 3, 10))

	err := svc.UpdatePlan(owner, 1, map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.UpdatePlan(admin, 42, map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	err = svc.UpdatePlan(admin, 1, map[string]interface{}{"id": uint(9)})
	assert.ErrorIs(t, err, ErrNoUpdateFields)

	err = svc.UpdatePlan(admin, 1, map[string]interface{}{"price": -1.0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	err = svc.UpdatePlan(admin, 1, map[string]interface{}{"max_items": float64(-5)})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max_items", verr.Field)

	err = svc.UpdatePlan(admin, 1, map[string]interface{}{"billing_cycle": "daily"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "billing_cycle", verr.Field)
}

func TestDeletePlan(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedPlan(repo, 2, nil)
	seedRestaurant(repo, 1, 7, 1)
	svc := newTestService(repo, date(2026, 3, 10))

	err := svc.DeletePlan(admin, 1)
	var inUse *PlanInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(1), inUse.Restaurants)
	assert.Contains(t, repo.plans, uint(1))

	require.NoError(t, svc.DeletePlan(admin, 2))
	assert.NotContains(t, repo.plans, uint(2))

	err = svc.DeletePlan(owner, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.DeletePlan(admin, 42)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestGetRestaurantLimits(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, func(p *models.SubscriptionPlan) {
		p.MaxItems = 10
		p.Analytics = true
	})
	r := seedRestaurant(repo, 1, 7, 1)
	end := date(2026, 6, 1)
	r.SubscriptionEnd = &end
	repo.usage[1] = Usage{Categories: 2, Items: 4, Images: 1}
	svc := newTestService(repo, date(2026, 3, 10))

	// Owner reads their own restaurant; zero falls back to the session's.
	limits, err := svc.GetRestaurantLimits(owner, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), limits.Usage.Items)
	assert.Equal(t, 10, limits.Limits.MaxItems)
	assert.True(t, limits.Features.Analytics)
	assert.Equal(t, models.SubscriptionStatusActive, limits.SubscriptionStatus)
	require.NotNil(t, limits.SubscriptionEnd)
	assert.Equal(t, end, *limits.SubscriptionEnd)

	// Admins can read any restaurant.
	_, err = svc.GetRestaurantLimits(admin, 1)
	require.NoError(t, err)

	// Other owners cannot.
	_, err = svc.GetRestaurantLimits(Actor{UserID: 8, RestaurantID: 2}, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetRestaurantLimits(Actor{}, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetRestaurantLimits(admin, 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetPlan(t *testing.T) {
	repo := newFakeRepo()
	seedPlan(repo, 1, nil)
	seedPlan(repo, 2, func(p *models.SubscriptionPlan) { p.IsActive = false })
	svc := newTestService(repo, date(2026, 3, 10))

	plan, err := svc.GetPlan(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), plan.ID)

	_, err = svc.GetPlan(2)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.GetPlan(42)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
