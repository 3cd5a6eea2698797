package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Category groups menu items inside a restaurant's menu. Only rows with
// IsActive=true count against the plan's category quota.
type Category struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"not null;index:idx_categories_restaurant_active,priority:1" json:"restaurant_id"`
	Name         string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	NameAr       string         `gorm:"type:varchar(150);not null" json:"name_ar" validate:"required,min=1,max=150"`
	Description  string         `gorm:"type:text;default:null" json:"description"`
	ImagePath    string         `gorm:"type:varchar(255);default:null" json:"image_path"`
	SortOrder    int            `gorm:"default:0" json:"sort_order"`
	IsActive     bool           `gorm:"default:true;index:idx_categories_restaurant_active,priority:2" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
