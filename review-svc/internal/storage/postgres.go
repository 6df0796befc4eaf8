package storage

import (
	"database/sql"
	"fmt"

	"tablescout/review-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ValidateBooking(bookingID, restaurantID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE id = $1 AND restaurant_id = $2 AND status = 'confirmed'
		)
	`, bookingID, restaurantID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) GetExistingReviewID(bookingID, restaurantID int) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		SELECT id FROM reviews
		WHERE booking_id = $1 AND restaurant_id = $2
	`, bookingID, restaurantID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) InsertReview(review *domain.Review) error {
	return r.DB.QueryRow(`
		INSERT INTO reviews (restaurant_id, booking_id, rating, comment, author_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, review.RestaurantID, review.BookingID, review.Rating, review.Comment, review.AuthorName).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) UpdateReview(id int, review *domain.Review) error {
	_, err := r.DB.Exec(`
		UPDATE reviews
		SET rating = $1, comment = $2, created_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, review.Rating, review.Comment, id)
	return err
}

func (r *PostgresRepository) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, booking_id, rating, COALESCE(comment, ''), COALESCE(author_name, ''), created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.BookingID, &rev.Rating, &rev.Comment, &rev.AuthorName, &rev.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (r *PostgresRepository) RatingDistribution(restaurantID int) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT rating, COUNT(*) as count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			continue
		}
		distribution[fmt.Sprintf("%d", rating)] = count
	}
	return distribution, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL,
			booking_id INTEGER NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			author_name VARCHAR(255),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, booking_id)
		)`)
	if err != nil {
		return fmt.Errorf("ensure reviews table: %w", err)
	}
	return nil
}
