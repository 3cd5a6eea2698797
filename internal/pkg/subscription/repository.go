package subscription

import (
	"time"

	"github.com/KarimAldeen/MenuDeck/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the subscription service.
type Repository interface {
	ListActivePlans() ([]models.SubscriptionPlan, error)
	GetActivePlan(id uint) (*models.SubscriptionPlan, error)
	GetPlan(id uint) (*models.SubscriptionPlan, error)
	CreatePlan(plan *models.SubscriptionPlan) error
	UpdatePlanFields(id uint, fields map[string]interface{}) error
	DeletePlan(id uint) error
	CountRestaurantsOnPlan(planID uint) (int64, error)

	GetRestaurant(id uint) (*models.Restaurant, error)
	GetRestaurantWithPlan(id uint) (*models.Restaurant, error)
	UpdateRestaurantSubscription(id uint, fields map[string]interface{}) error
	ListExpiredRestaurants(today time.Time) ([]models.Restaurant, error)

	CountUsage(restaurantID uint) (Usage, error)

	LogActivity(entry *models.ActivityLog) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a subscription repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListActivePlans() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.
		Where("is_active = ?", true).
		Order("sort_order ASC, price ASC").
		Find(&plans).Error
	return plans, err
}

func (r *gormRepository) GetActivePlan(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) GetPlan(id uint) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) CreatePlan(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *gormRepository) UpdatePlanFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.SubscriptionPlan{}).Where("id = ?", id).Updates(fields).Error
}

func (r *gormRepository) DeletePlan(id uint) error {
	return r.db.Delete(&models.SubscriptionPlan{}, id).Error
}

func (r *gormRepository) CountRestaurantsOnPlan(planID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).
		Where("subscription_plan_id = ?", planID).
		Count(&count).Error
	return count, err
}

func (r *gormRepository) GetRestaurant(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *gormRepository) GetRestaurantWithPlan(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Preload("Plan").First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// UpdateRestaurantSubscription applies all subscription fields in a single
// UPDATE so plan reassignment stays atomic.
func (r *gormRepository) UpdateRestaurantSubscription(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

func (r *gormRepository) ListExpiredRestaurants(today time.Time) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.
		Where("subscription_status = ? AND subscription_end < ?", models.SubscriptionStatusActive, today).
		Find(&restaurants).Error
	return restaurants, err
}

// CountUsage runs the three live COUNT queries. Usage is computed at call
// time so the gate always sees the store's current state.
func (r *gormRepository) CountUsage(restaurantID uint) (Usage, error) {
	var usage Usage

	err := r.db.Model(&models.Category{}).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Count(&usage.Categories).Error
	if err != nil {
		return Usage{}, err
	}

	err = r.db.Model(&models.MenuItem{}).
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Count(&usage.Items).Error
	if err != nil {
		return Usage{}, err
	}

	err = r.db.Model(&models.FileUpload{}).
		Where("restaurant_id = ? AND file_type IN ?", restaurantID, []string{models.FileTypeImage, models.FileTypeLogo}).
		Count(&usage.Images).Error
	if err != nil {
		return Usage{}, err
	}

	return usage, nil
}

func (r *gormRepository) LogActivity(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}
