package domain

import (
	"sort"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortByRating      SortKey = "rating"
	SortByPrice       SortKey = "price"
	SortByReviewCount SortKey = "reviewCount"
	SortByDistance    SortKey = "distance"
)

const DefaultPageSize = 10

// SearchCriteria is an immutable query descriptor. Nil pointer fields mean
// "filter not requested"; filters compose as a logical AND. MaxDistanceKm
// only takes effect when Location is also set, and SortByDistance without a
// Location is skipped rather than rejected.
type SearchCriteria struct {
	Cuisines      []Cuisine `json:"cuisines,omitempty"`
	PriceLevel    *int      `json:"price_level,omitempty"`
	MinRating     *float64  `json:"min_rating,omitempty"`
	VerifiedOnly  bool      `json:"verified_only,omitempty"`
	OpenNow       bool      `json:"open_now,omitempty"`
	MaxDistanceKm *float64  `json:"max_distance_km,omitempty"`
	Location      *GeoPoint `json:"location,omitempty"`
	SortBy        SortKey   `json:"sort_by,omitempty"`
	Page          int       `json:"page,omitempty"`
	Limit         int       `json:"limit,omitempty"`
}

func (c SearchCriteria) PageOrDefault() int {
	if c.Page < 1 {
		return 1
	}
	return c.Page
}

func (c SearchCriteria) LimitOrDefault() int {
	if c.Limit < 1 {
		return DefaultPageSize
	}
	return c.Limit
}

// CacheKey renders the criteria as a canonical string usable as a cache key.
// Identical criteria always produce identical keys.
func (c SearchCriteria) CacheKey() string {
	var parts []string

	if len(c.Cuisines) > 0 {
		cuisines := make([]string, len(c.Cuisines))
		for i, cuisine := range c.Cuisines {
			cuisines[i] = string(cuisine)
		}
		sort.Strings(cuisines)
		parts = append(parts, "cuisines="+strings.Join(cuisines, ","))
	}
	if c.PriceLevel != nil {
		parts = append(parts, "price="+strconv.Itoa(*c.PriceLevel))
	}
	if c.MinRating != nil {
		parts = append(parts, "rating="+strconv.FormatFloat(*c.MinRating, 'f', -1, 64))
	}
	if c.VerifiedOnly {
		parts = append(parts, "verified")
	}
	if c.OpenNow {
		parts = append(parts, "open")
	}
	if c.MaxDistanceKm != nil {
		parts = append(parts, "dist="+strconv.FormatFloat(*c.MaxDistanceKm, 'f', -1, 64))
	}
	if c.Location != nil {
		parts = append(parts, "at="+strconv.FormatFloat(c.Location.Latitude, 'f', -1, 64)+
			";"+strconv.FormatFloat(c.Location.Longitude, 'f', -1, 64))
	}
	if c.SortBy != "" {
		parts = append(parts, "sort="+string(c.SortBy))
	}
	parts = append(parts,
		"page="+strconv.Itoa(c.PageOrDefault()),
		"limit="+strconv.Itoa(c.LimitOrDefault()))

	return strings.Join(parts, "&")
}
