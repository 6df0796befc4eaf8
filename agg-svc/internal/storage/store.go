package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// UpdateRestaurantRating recomputes the aggregate rating from the reviews
// table, then mirrors the fresh snapshot into Redis for quick lookups.
func (s *Store) UpdateRestaurantRating(restaurantID int) error {
	_, err := s.db.Exec(`
		UPDATE restaurants
		SET average_rating = COALESCE((
			SELECT ROUND(AVG(rating::numeric), 2)
			FROM reviews
			WHERE restaurant_id = $1
		), 0),
		review_count = (
			SELECT COUNT(*)
			FROM reviews
			WHERE restaurant_id = $1
		)
		WHERE id = $1
	`, restaurantID)
	if err != nil {
		return err
	}

	var avgRating float64
	var reviewCount int
	if err := s.db.QueryRow(`
		SELECT COALESCE(average_rating, 0), COALESCE(review_count, 0)
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&avgRating, &reviewCount); err != nil {
		return err
	}

	key := fmt.Sprintf("restaurant:%d", restaurantID)
	s.rdb.HSet(s.ctx, key, map[string]interface{}{
		"average_rating": avgRating,
		"review_count":   reviewCount,
		"last_updated":   time.Now().Unix(),
	})
	s.rdb.Expire(s.ctx, key, 24*time.Hour)

	s.rdb.ZAdd(s.ctx, "trending:rated", redis.Z{
		Score:  avgRating,
		Member: strconv.Itoa(restaurantID),
	})
	return nil
}

// RecordBooking bumps the restaurant on the per-day booking leaderboard.
// Keys roll over daily and are kept for a week.
func (s *Store) RecordBooking(restaurantID int, day string) error {
	dailyKey := "trending:booked:" + day
	if err := s.rdb.ZIncrBy(s.ctx, dailyKey, 1, strconv.Itoa(restaurantID)).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)
	return nil
}
