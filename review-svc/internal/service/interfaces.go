package service

import (
	"context"

	"tablescout/review-svc/internal/domain"
)

type ReviewServiceInterface interface {
	CreateOrUpdate(ctx context.Context, review *domain.Review) error
	ListRestaurantReviews(restaurantID int) ([]domain.Review, error)
	RatingSummary(restaurantID int) (map[string]int, error)
}

type ReviewRepository interface {
	ValidateBooking(bookingID, restaurantID int) (bool, error)
	GetExistingReviewID(bookingID, restaurantID int) (int, error)
	InsertReview(review *domain.Review) error
	UpdateReview(id int, review *domain.Review) error
	ListRestaurantReviews(restaurantID int) ([]domain.Review, error)
	RatingDistribution(restaurantID int) (map[string]int, error)
}

type ReviewCache interface {
	ReviewMarkerKey(bookingID, restaurantID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
