package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MenuItem is a dish on a restaurant's menu. Only rows with IsAvailable=true
// count against the plan's item quota.
type MenuItem struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	RestaurantID  uint           `gorm:"not null;index:idx_menu_items_restaurant_available,priority:1" json:"restaurant_id"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	NameAr        string         `gorm:"type:varchar(150);not null" json:"name_ar" validate:"required,min=1,max=150"`
	Description   string         `gorm:"type:text;default:null" json:"description"`
	DescriptionAr string         `gorm:"type:text;default:null" json:"description_ar"`
	Price         float64        `gorm:"type:decimal(10,2);not null;default:0" json:"price" validate:"gte=0"`
	ImagePath     string         `gorm:"type:varchar(255);default:null" json:"image_path"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	SortOrder     int            `gorm:"default:0" json:"sort_order"`
	IsAvailable   bool           `gorm:"default:true;index:idx_menu_items_restaurant_available,priority:2" json:"is_available"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MenuItem) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
