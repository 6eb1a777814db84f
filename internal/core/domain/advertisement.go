package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Advertisement is a single classifieds listing.
//
// Author holds the username of whoever created the listing. It is not a
// foreign key: the user may since have been renamed or deleted.
type Advertisement struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAdvertisement holds the caller-supplied fields of a listing.
type NewAdvertisement struct {
	Title       string
	Description string
	Price       float64
	Author      string
}

// AdvertisementPatch carries a partial update. Nil fields are left unchanged.
type AdvertisementPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Author      *string
}

// AdvertisementFilter selects listings in a search. Every field is optional;
// a listing matches when it satisfies all of the fields that are set.
type AdvertisementFilter struct {
	Title       *string
	Description *string
	Author      *string
	PriceMin    *float64 // inclusive
	PriceMax    *float64 // inclusive
}

// Matches reports whether ad satisfies every predicate in the filter.
// Text predicates are case-insensitive substring tests.
func (f AdvertisementFilter) Matches(ad Advertisement) bool {
	if f.Title != nil && !containsFold(ad.Title, *f.Title) {
		return false
	}
	if f.Description != nil && !containsFold(ad.Description, *f.Description) {
		return false
	}
	if f.Author != nil && !containsFold(ad.Author, *f.Author) {
		return false
	}
	if f.PriceMin != nil && ad.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && ad.Price > *f.PriceMax {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
