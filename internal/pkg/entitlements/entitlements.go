package entitlements

import (
	"encoding/json"
	"fmt"

	"github.com/KarimAldeen/MenuDeck/app/models"
)

// Snapshot is a point-in-time copy of a restaurant's plan limits and feature
// flags, taken at login and stored in the session. It exists for display
// only: dashboards render it without an extra query. Enforcement always goes
// through the subscription service, which re-reads the live plan row, so a
// snapshot that went stale after an admin reassigned the plan cannot be used
// to bypass quotas. It is refreshed on the next login.
type Snapshot struct {
	PlanID   uint   `json:"id"`
	PlanName string `json:"name"`

	MaxCategories int `json:"max_categories"`
	MaxItems      int `json:"max_items"`
	MaxImages     int `json:"max_images"`

	ColorCustomization bool `json:"color_customization"`
	Analytics          bool `json:"analytics"`
	Reviews            bool `json:"reviews"`
	OnlineOrdering     bool `json:"online_ordering"`
	CustomDomain       bool `json:"custom_domain"`
}

// SnapshotFromPlan copies the display-relevant plan fields.
func SnapshotFromPlan(plan *models.SubscriptionPlan) Snapshot {
	if plan == nil {
		return Snapshot{}
	}
	return Snapshot{
		PlanID:             plan.ID,
		PlanName:           plan.Name,
		MaxCategories:      plan.MaxCategories,
		MaxItems:           plan.MaxItems,
		MaxImages:          plan.MaxImages,
		ColorCustomization: plan.ColorCustomization,
		Analytics:          plan.Analytics,
		Reviews:            plan.Reviews,
		OnlineOrdering:     plan.OnlineOrdering,
		CustomDomain:       plan.CustomDomain,
	}
}

// Encode serializes the snapshot for session storage.
func (s Snapshot) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSnapshot parses a snapshot stored in the session. An empty value
// yields a zero snapshot without error.
func DecodeSnapshot(raw string) (Snapshot, error) {
	if raw == "" {
		return Snapshot{}, nil
	}
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

// Valid reports whether the snapshot references a plan.
func (s Snapshot) Valid() bool {
	return s.PlanID != 0
}

// FormatLimit renders a limit value for display, mapping the -1 sentinel to
// "unlimited".
func FormatLimit(limit int) string {
	if limit == models.UnlimitedLimit {
		return "unlimited"
	}
	return fmt.Sprintf("%d", limit)
}
