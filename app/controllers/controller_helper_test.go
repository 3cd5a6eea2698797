package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pizza Palace", "pizza-palace"},
		{"  Café del Mar  ", "caf-del-mar"},
		{"Burger&Fries!", "burger-fries"},
		{"---", ""},
		{"مطعم الشام", ""},
		{"Already-Slugged-123", "already-slugged-123"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"pizza": true, "pizza-2": true}
	exists := func(s string) (bool, error) { return taken[s], nil }

	slug, err := uniqueSlug("pizza", exists)
	require.NoError(t, err)
	assert.Equal(t, "pizza-3", slug)

	slug, err = uniqueSlug("sushi", exists)
	require.NoError(t, err)
	assert.Equal(t, "sushi", slug)

	// Empty base (non-latin name) falls back to a generic slug.
	slug, err = uniqueSlug("", exists)
	require.NoError(t, err)
	assert.Equal(t, "restaurant", slug)
}

func TestUniqueSlug_PropagatesStoreError(t *testing.T) {
	wantErr := errors.New("db down")
	_, err := uniqueSlug("pizza", func(string) (bool, error) { return false, wantErr })
	assert.ErrorIs(t, err, wantErr)
}
