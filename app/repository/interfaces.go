package repository

import (
	"github.com/KarimAldeen/MenuDeck/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// RestaurantRepository defines the interface for restaurant (tenant) operations
type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uint) (*models.Restaurant, error)
	GetByUserID(userID uint) (*models.Restaurant, error)
	GetBySlug(slug string) (*models.Restaurant, error)
	GetWithPlan(id uint) (*models.Restaurant, error)
	Update(restaurant *models.Restaurant) error
	SetApproval(id uint, approved bool) error
	SlugExists(slug string) (bool, error)
	SubdomainExists(subdomain string) (bool, error)
	List(offset, limit int) ([]models.Restaurant, error)
	Count() (int64, error)
	CountActive() (int64, error)
}

// CategoryRepository defines the interface for menu category operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByRestaurantID(restaurantID uint) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// MenuItemRepository defines the interface for menu item operations
type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetByRestaurantID(restaurantID uint) ([]models.MenuItem, error)
	GetByCategoryID(categoryID uint) ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
	Count() (int64, error)
}

// FileUploadRepository defines the interface for upload bookkeeping
type FileUploadRepository interface {
	Create(upload *models.FileUpload) error
	GetByID(id uint) (*models.FileUpload, error)
	GetByRestaurantID(restaurantID uint) ([]models.FileUpload, error)
	Delete(id uint) error
}

// ActivityLogRepository defines the interface for the audit trail
type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error
	GetByRestaurantID(restaurantID uint, limit int) ([]models.ActivityLog, error)
}
