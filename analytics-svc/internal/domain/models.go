package domain

// RestaurantAnalytics is one leaderboard entry. Score is either a booking
// count or an average rating depending on the board.
type RestaurantAnalytics struct {
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	ReviewCount  int     `json:"review_count,omitempty"`
}

type RestaurantStats struct {
	RestaurantID  int     `json:"restaurant_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	BookingsToday int     `json:"bookings_today"`
	LastUpdated   int64   `json:"last_updated,omitempty"`
}
