package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"tablescout/directory-svc/internal/domain"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type SearchService struct {
	repository RestaurantRepository
	cache      SearchCache
	// Now supplies the evaluation instant for open-now filtering.
	Now func() time.Time
}

func NewSearchService(repository RestaurantRepository, cache SearchCache) *SearchService {
	return &SearchService{
		repository: repository,
		cache:      cache,
		Now:        time.Now,
	}
}

// Search filters, sorts and paginates the restaurant collection. Total
// reflects the filtered set before pagination so callers can page through
// the full match count.
func (s *SearchService) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.SearchKey(criteria)
		if cached, ok := s.cache.GetResult(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	restaurants, err := s.repository.ListRestaurants()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	filtered := make([]domain.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if s.matches(criteria, restaurant, now) {
			filtered = append(filtered, restaurant)
		}
	}

	sortRestaurants(filtered, criteria)

	result := &domain.SearchResult{
		Results: paginate(filtered, criteria.PageOrDefault(), criteria.LimitOrDefault()),
		Total:   len(filtered),
	}

	if s.cache != nil {
		_ = s.cache.SetResult(ctx, cacheKey, result)
	}
	return result, nil
}

func (s *SearchService) Get(id int) (*domain.Restaurant, error) {
	restaurant, err := s.repository.GetRestaurant(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *SearchService) matches(criteria domain.SearchCriteria, restaurant domain.Restaurant, now time.Time) bool {
	if len(criteria.Cuisines) > 0 {
		found := false
		for _, cuisine := range criteria.Cuisines {
			if restaurant.Cuisine == cuisine {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if criteria.PriceLevel != nil && restaurant.PriceLevel != *criteria.PriceLevel {
		return false
	}

	if criteria.MinRating != nil && restaurant.AverageRating < *criteria.MinRating {
		return false
	}

	if criteria.VerifiedOnly && !restaurant.IsVerified {
		return false
	}

	if criteria.OpenNow {
		day := domain.WeekdayKey(now)
		clock := domain.FormatClock(now.Hour()*60 + now.Minute())
		if !restaurant.OpeningHours.IsOpenAt(day, clock) {
			return false
		}
	}

	// Distance filtering is a no-op unless a reference point is supplied.
	if criteria.MaxDistanceKm != nil && criteria.Location != nil {
		if domain.HaversineKm(*criteria.Location, restaurant.Location()) > *criteria.MaxDistanceKm {
			return false
		}
	}

	return true
}

// sortRestaurants orders by the single requested key, ascending. The order
// of equal keys is unspecified; SliceStable only keeps runs repeatable.
func sortRestaurants(restaurants []domain.Restaurant, criteria domain.SearchCriteria) {
	switch criteria.SortBy {
	case domain.SortByRating:
		sort.SliceStable(restaurants, func(i, j int) bool {
			return restaurants[i].AverageRating < restaurants[j].AverageRating
		})
	case domain.SortByPrice:
		sort.SliceStable(restaurants, func(i, j int) bool {
			return restaurants[i].PriceLevel < restaurants[j].PriceLevel
		})
	case domain.SortByReviewCount:
		sort.SliceStable(restaurants, func(i, j int) bool {
			return restaurants[i].ReviewCount < restaurants[j].ReviewCount
		})
	case domain.SortByDistance:
		if criteria.Location == nil {
			return
		}
		origin := *criteria.Location
		sort.SliceStable(restaurants, func(i, j int) bool {
			return domain.HaversineKm(origin, restaurants[i].Location()) <
				domain.HaversineKm(origin, restaurants[j].Location())
		})
	}
}

func paginate(restaurants []domain.Restaurant, page, limit int) []domain.Restaurant {
	offset := (page - 1) * limit
	if offset >= len(restaurants) {
		return []domain.Restaurant{}
	}
	end := offset + limit
	if end > len(restaurants) {
		end = len(restaurants)
	}
	return restaurants[offset:end]
}
