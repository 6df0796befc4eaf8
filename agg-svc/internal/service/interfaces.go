package service

import (
	"context"

	"tablescout/agg-svc/internal/domain"
	"tablescout/agg-svc/internal/storage"
)

type StoreInterface interface {
	UpdateRestaurantRating(restaurantID int) error
	RecordBooking(restaurantID int, day string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.Event)
}

var _ StoreInterface = (*storage.Store)(nil)
