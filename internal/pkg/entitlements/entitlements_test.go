package entitlements

import (
	"testing"

	"github.com/KarimAldeen/MenuDeck/app/models"
)

func TestSnapshotFromPlan(t *testing.T) {
	plan := &models.SubscriptionPlan{
		ID:            3,
		Name:          "Premium",
		MaxCategories: -1,
		MaxItems:      50,
		MaxImages:     30,
		Analytics:     true,
		Reviews:       true,
	}

	snap := SnapshotFromPlan(plan)
	if snap.PlanID != 3 || snap.PlanName != "Premium" {
		t.Fatalf("unexpected plan identity: %+v", snap)
	}
	if snap.MaxCategories != -1 || snap.MaxItems != 50 {
		t.Fatalf("limits not copied: %+v", snap)
	}
	if !snap.Analytics || snap.OnlineOrdering {
		t.Fatalf("feature flags not copied: %+v", snap)
	}
	if !snap.Valid() {
		t.Fatalf("snapshot of a real plan should be valid")
	}
}

func TestSnapshotFromNilPlan(t *testing.T) {
	snap := SnapshotFromPlan(nil)
	if snap.Valid() {
		t.Fatalf("nil plan should yield an invalid snapshot")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := Snapshot{PlanID: 2, PlanName: "Basic", MaxItems: 50, Reviews: true}

	raw, err := snap.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != snap {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, snap)
	}
}

func TestDecodeSnapshot_EmptyAndGarbage(t *testing.T) {
	snap, err := DecodeSnapshot("")
	if err != nil {
		t.Fatalf("empty value should not error: %v", err)
	}
	if snap.Valid() {
		t.Fatalf("empty value should yield an invalid snapshot")
	}

	if _, err := DecodeSnapshot("{not json"); err == nil {
		t.Fatalf("expected error for malformed snapshot")
	}
}

func TestFormatLimit(t *testing.T) {
	if got := FormatLimit(-1); got != "unlimited" {
		t.Fatalf("FormatLimit(-1) = %q, want %q", got, "unlimited")
	}
	if got := FormatLimit(25); got != "25" {
		t.Fatalf("FormatLimit(25) = %q, want %q", got, "25")
	}
}
