package repository

import (
	"github.com/KarimAldeen/MenuDeck/app/models"
	"gorm.io/gorm"
)

// restaurantRepository implements the RestaurantRepository interface
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository instance
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create creates a new restaurant in the database
func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

// GetByID retrieves a restaurant by its ID
func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetByUserID retrieves the restaurant owned by the given user
func (r *restaurantRepository) GetByUserID(userID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("user_id = ?", userID).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetBySlug retrieves a restaurant by its public slug
func (r *restaurantRepository) GetBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("slug = ?", slug).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetWithPlan retrieves a restaurant together with its subscription plan row
func (r *restaurantRepository) GetWithPlan(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Preload("Plan").First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Update saves changes to an existing restaurant
func (r *restaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

// SetApproval flips the admin approval gate for a restaurant
func (r *restaurantRepository) SetApproval(id uint, approved bool) error {
	return r.db.Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_approved": approved,
			"is_active":   approved,
		}).Error
}

// SlugExists reports whether a slug is already taken
func (r *restaurantRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SubdomainExists reports whether a subdomain is already taken
func (r *restaurantRepository) SubdomainExists(subdomain string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).Where("subdomain = ?", subdomain).Count(&count).Error
	return count > 0, err
}

// List returns restaurants with pagination
func (r *restaurantRepository) List(offset, limit int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&restaurants).Error
	return restaurants, err
}

// Count returns the total number of restaurants
func (r *restaurantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).Count(&count).Error
	return count, err
}

// CountActive returns the number of restaurants with an active subscription
func (r *restaurantRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).
		Where("subscription_status = ? AND is_active = ?", models.SubscriptionStatusActive, true).
		Count(&count).Error
	return count, err
}
