package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository implementations.
type Repositories struct {
	User        UserRepository
	Restaurant  RestaurantRepository
	Category    CategoryRepository
	MenuItem    MenuItemRepository
	FileUpload  FileUploadRepository
	ActivityLog ActivityLogRepository
}

// NewRepositories creates all repositories backed by the given DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Restaurant:  NewRestaurantRepository(db),
		Category:    NewCategoryRepository(db),
		MenuItem:    NewMenuItemRepository(db),
		FileUpload:  NewFileUploadRepository(db),
		ActivityLog: NewActivityLogRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetRestaurantRepository returns the restaurant repository instance
func (f *Factory) GetRestaurantRepository() RestaurantRepository {
	return f.GetRepositories().Restaurant
}

// GetCategoryRepository returns the category repository instance
func (f *Factory) GetCategoryRepository() CategoryRepository {
	return f.GetRepositories().Category
}

// GetMenuItemRepository returns the menu item repository instance
func (f *Factory) GetMenuItemRepository() MenuItemRepository {
	return f.GetRepositories().MenuItem
}

// GetFileUploadRepository returns the file upload repository instance
func (f *Factory) GetFileUploadRepository() FileUploadRepository {
	return f.GetRepositories().FileUpload
}

// GetActivityLogRepository returns the activity log repository instance
func (f *Factory) GetActivityLogRepository() ActivityLogRepository {
	return f.GetRepositories().ActivityLog
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
