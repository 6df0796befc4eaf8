package domain

import "time"

// Review is tied to a confirmed booking so only actual guests can rate
// a restaurant. One review per booking; re-submitting replaces it.
type Review struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	BookingID    int       `json:"booking_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	AuthorName   string    `json:"author_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewEvent struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	BookingID    int       `json:"booking_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}
