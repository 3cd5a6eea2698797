package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusExpired   = "expired"
)

// Restaurant is a tenant account. Each restaurant references exactly one
// subscription plan; the subscription window and status are mutated only by
// the subscription service (assignment, extension, expiry sweep) or by admin
// deactivation.
type Restaurant struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	Name          string `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	NameAr        string `gorm:"type:varchar(150);not null" json:"name_ar" validate:"required,min=2,max=150"`
	Slug          string `gorm:"type:varchar(160);uniqueIndex" json:"slug"`
	Subdomain     string `gorm:"type:varchar(63);uniqueIndex" json:"subdomain"`
	Description   string `gorm:"type:text;default:null" json:"description"`
	DescriptionAr string `gorm:"type:text;default:null" json:"description_ar"`
	Phone         string `gorm:"type:varchar(30);default:null" json:"phone"`
	Email         string `gorm:"type:varchar(200);default:null" json:"email"`
	Address       string `gorm:"type:varchar(255);default:null" json:"address"`
	AddressAr     string `gorm:"type:varchar(255);default:null" json:"address_ar"`
	City          string `gorm:"type:varchar(100);default:null" json:"city"`
	CityAr        string `gorm:"type:varchar(100);default:null" json:"city_ar"`
	CuisineType   string `gorm:"type:varchar(100);default:null" json:"cuisine_type"`

	SubscriptionPlanID uint       `gorm:"not null;index" json:"subscription_plan_id"`
	SubscriptionStart  *time.Time `gorm:"type:date" json:"subscription_start"`
	SubscriptionEnd    *time.Time `gorm:"type:date;index" json:"subscription_end"`
	SubscriptionStatus string     `gorm:"type:varchar(20);not null;default:'active';index" json:"subscription_status" validate:"oneof=active suspended expired"`

	// Admin gating, orthogonal to subscription state.
	IsActive   bool `gorm:"default:false;index" json:"is_active"`
	IsApproved bool `gorm:"default:false" json:"is_approved"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Plan *SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"plan,omitempty"`
}

func (r *Restaurant) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// SubscriptionExpired reports whether the subscription window elapsed before
// the given day. Expiry compares calendar dates, not clock instants.
func (r *Restaurant) SubscriptionExpired(today time.Time) bool {
	if r.SubscriptionEnd == nil {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return r.SubscriptionEnd.Before(day)
}
