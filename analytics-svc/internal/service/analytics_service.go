package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tablescout/analytics-svc/internal/domain"
)

const leaderboardSize = 10

// AnalyticsService reads the leaderboards maintained by the aggregation
// consumer. Redis is the primary source; when a board is empty or Redis
// is unreachable, the same numbers are derived from Postgres directly.
type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *AnalyticsService) TopBookedToday() ([]domain.RestaurantAnalytics, error) {
	today := time.Now().Format("2006-01-02")
	key := "trending:booked:" + today

	result, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, leaderboardSize-1).Result()
	if err != nil || len(result) == 0 {
		return s.topBookedTodayFromDB()
	}

	var top []domain.RestaurantAnalytics
	for _, member := range result {
		restaurantID, _ := strconv.Atoi(member.Member.(string))
		var name string
		if err := s.db.QueryRow("SELECT name FROM restaurants WHERE id = $1", restaurantID).Scan(&name); err != nil {
			continue
		}
		top = append(top, domain.RestaurantAnalytics{
			RestaurantID: restaurantID,
			Name:         name,
			Score:        member.Score,
		})
	}
	return top, nil
}

func (s *AnalyticsService) topBookedTodayFromDB() ([]domain.RestaurantAnalytics, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.name, COUNT(b.id) as score
		FROM restaurants r
		JOIN bookings b ON b.restaurant_id = r.id
		WHERE b.created_at::date = CURRENT_DATE
		GROUP BY r.id, r.name
		ORDER BY score DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.RestaurantAnalytics
	for rows.Next() {
		var entry domain.RestaurantAnalytics
		if err := rows.Scan(&entry.RestaurantID, &entry.Name, &entry.Score); err != nil {
			continue
		}
		top = append(top, entry)
	}
	return top, nil
}

func (s *AnalyticsService) TopRated() ([]domain.RestaurantAnalytics, error) {
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, "trending:rated", 0, leaderboardSize-1).Result()
	if err != nil || len(result) == 0 {
		return s.topRatedFromDB()
	}

	var top []domain.RestaurantAnalytics
	for _, member := range result {
		restaurantID, _ := strconv.Atoi(member.Member.(string))
		var name string
		var reviewCount int
		if err := s.db.QueryRow("SELECT name, COALESCE(review_count, 0) FROM restaurants WHERE id = $1", restaurantID).
			Scan(&name, &reviewCount); err != nil {
			continue
		}
		top = append(top, domain.RestaurantAnalytics{
			RestaurantID: restaurantID,
			Name:         name,
			Score:        member.Score,
			ReviewCount:  reviewCount,
		})
	}
	return top, nil
}

func (s *AnalyticsService) topRatedFromDB() ([]domain.RestaurantAnalytics, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(average_rating, 0) as score, review_count
		FROM restaurants
		WHERE review_count > 0
		ORDER BY average_rating DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.RestaurantAnalytics
	for rows.Next() {
		var entry domain.RestaurantAnalytics
		if err := rows.Scan(&entry.RestaurantID, &entry.Name, &entry.Score, &entry.ReviewCount); err != nil {
			continue
		}
		top = append(top, entry)
	}
	return top, nil
}

func (s *AnalyticsService) RestaurantStats(restaurantID int) (*domain.RestaurantStats, error) {
	stats := &domain.RestaurantStats{RestaurantID: restaurantID}

	snapshot, err := s.rdb.HGetAll(s.ctx, "restaurant:"+strconv.Itoa(restaurantID)).Result()
	if err == nil && len(snapshot) > 0 {
		stats.AverageRating, _ = strconv.ParseFloat(snapshot["average_rating"], 64)
		stats.ReviewCount, _ = strconv.Atoi(snapshot["review_count"])
		stats.LastUpdated, _ = strconv.ParseInt(snapshot["last_updated"], 10, 64)
	} else {
		if err := s.db.QueryRow(`
			SELECT COALESCE(average_rating, 0), COALESCE(review_count, 0)
			FROM restaurants
			WHERE id = $1
		`, restaurantID).Scan(&stats.AverageRating, &stats.ReviewCount); err != nil {
			return nil, err
		}
	}

	today := time.Now().Format("2006-01-02")
	if score, err := s.rdb.ZScore(s.ctx, "trending:booked:"+today, strconv.Itoa(restaurantID)).Result(); err == nil {
		stats.BookingsToday = int(score)
	}

	return stats, nil
}

func (s *AnalyticsService) RatingDistribution(restaurantID int) (map[string]int, error) {
	return s.scanDistribution(`
		SELECT rating, COUNT(*) as count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
}

func (s *AnalyticsService) GlobalDistribution() (map[string]int, error) {
	return s.scanDistribution(`
		SELECT rating, COUNT(*) as count
		FROM reviews
		GROUP BY rating
		ORDER BY rating
	`)
}

func (s *AnalyticsService) scanDistribution(query string, args ...interface{}) (map[string]int, error) {
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return distribution, nil
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		rows.Scan(&rating, &count)
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, nil
}
