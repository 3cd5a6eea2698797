package models

import "time"

const (
	ActivityPlanCreated          = "plan_created"
	ActivityPlanUpdated          = "plan_updated"
	ActivityPlanDeleted          = "plan_deleted"
	ActivityPlanAssigned         = "plan_assigned"
	ActivitySubscriptionExtended = "subscription_extended"
	ActivitySubscriptionExpired  = "subscription_expired"
	ActivityRestaurantRegistered = "restaurant_registered"
)

// ActivityLog is an append-only audit trail for subscription and account
// events. RestaurantID and UserID are nullable because some events (plan
// catalog changes) are not tied to a tenant.
type ActivityLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       *uint     `gorm:"index" json:"user_id,omitempty"`
	RestaurantID *uint     `gorm:"index" json:"restaurant_id,omitempty"`
	Action       string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Description  string    `gorm:"type:text;default:null" json:"description"`
	IPAddress    string    `gorm:"type:varchar(45);default:null" json:"-"`
	UserAgent    string    `gorm:"type:varchar(255);default:null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
