package repository

import (
	"github.com/KarimAldeen/MenuDeck/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByRestaurantID(restaurantID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// menuItemRepository implements the MenuItemRepository interface
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository instance
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetByRestaurantID(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetByCategoryID(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ?", categoryID).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

func (r *menuItemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuItem{}).Count(&count).Error
	return count, err
}
