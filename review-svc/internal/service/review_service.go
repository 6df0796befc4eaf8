package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablescout/review-svc/internal/domain"
)

var (
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrBookingNotFound     = errors.New("no confirmed booking for this restaurant")
	ErrDuplicateSubmission = errors.New("review for this booking was submitted moments ago")
)

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// CreateOrUpdate stores a review for a confirmed booking. A repeated
// submission for the same booking replaces the earlier review, except
// within the cache marker's TTL where it is rejected as a double-click.
func (s *ReviewService) CreateOrUpdate(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	valid, err := s.repository.ValidateBooking(review.BookingID, review.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to validate booking: %w", err)
	}
	if !valid {
		return ErrBookingNotFound
	}

	cacheKey := s.cache.ReviewMarkerKey(review.BookingID, review.RestaurantID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return ErrDuplicateSubmission
	}

	existingID, err := s.repository.GetExistingReviewID(review.BookingID, review.RestaurantID)
	isUpdate := err == nil && existingID > 0
	if isUpdate {
		if err := s.repository.UpdateReview(existingID, review); err != nil {
			return err
		}
		review.ID = existingID
	} else if err := s.repository.InsertReview(review); err != nil {
		return err
	}

	_ = s.cache.SetMarker(ctx, cacheKey)

	if s.publisher != nil {
		_ = s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:         "new_review",
			RestaurantID: review.RestaurantID,
			BookingID:    review.BookingID,
			Rating:       review.Rating,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

func (s *ReviewService) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	return s.repository.ListRestaurantReviews(restaurantID)
}

func (s *ReviewService) RatingSummary(restaurantID int) (map[string]int, error) {
	return s.repository.RatingDistribution(restaurantID)
}
