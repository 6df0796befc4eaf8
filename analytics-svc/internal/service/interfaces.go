package service

import (
	"tablescout/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopBookedToday() ([]domain.RestaurantAnalytics, error)
	TopRated() ([]domain.RestaurantAnalytics, error)
	RestaurantStats(restaurantID int) (*domain.RestaurantStats, error)
	RatingDistribution(restaurantID int) (map[string]int, error)
	GlobalDistribution() (map[string]int, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
