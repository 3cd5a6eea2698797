package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

// UnlimitedLimit is the sentinel value for a resource limit without a cap.
const UnlimitedLimit = -1

// SubscriptionPlan is a purchasable tier with resource limits and feature
// flags. Limits use -1 as "unlimited"; a limit of 0 means the resource is not
// available at all on that plan.
type SubscriptionPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=2,max=100"`
	NameAr        string    `gorm:"type:varchar(100);not null" json:"name_ar" validate:"required,min=2,max=100"`
	Description   string    `gorm:"type:text;default:null" json:"description"`
	DescriptionAr string    `gorm:"type:text;default:null" json:"description_ar"`
	Price         float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price" validate:"gte=0"`
	Currency      string    `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	BillingCycle  string    `gorm:"type:varchar(16);not null;default:'monthly'" json:"billing_cycle" validate:"oneof=monthly yearly"`
	MaxCategories int       `gorm:"not null;default:0" json:"max_categories" validate:"gte=-1"`
	MaxItems      int       `gorm:"not null;default:0" json:"max_items" validate:"gte=-1"`
	MaxImages     int       `gorm:"not null;default:0" json:"max_images" validate:"gte=-1"`

	ColorCustomization bool `gorm:"default:false" json:"color_customization"`
	Analytics          bool `gorm:"default:false" json:"analytics"`
	Reviews            bool `gorm:"default:true" json:"reviews"`
	OnlineOrdering     bool `gorm:"default:false" json:"online_ordering"`
	CustomDomain       bool `gorm:"default:false" json:"custom_domain"`
	PrioritySupport    bool `gorm:"default:false" json:"priority_support"`

	IsPopular bool `gorm:"default:false" json:"is_popular"`
	SortOrder int  `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *SubscriptionPlan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// SubscriptionTerm returns the subscription window length for this plan's
// billing cycle, measured from the given start date.
func (p *SubscriptionPlan) SubscriptionTerm(start time.Time) time.Time {
	if p.BillingCycle == BillingCycleYearly {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

// HasFeature resolves a feature flag by its action name.
func (p *SubscriptionPlan) HasFeature(feature string) bool {
	switch feature {
	case "color_customization":
		return p.ColorCustomization
	case "analytics":
		return p.Analytics
	case "reviews":
		return p.Reviews
	case "online_ordering":
		return p.OnlineOrdering
	case "custom_domain":
		return p.CustomDomain
	case "priority_support":
		return p.PrioritySupport
	default:
		return false
	}
}
