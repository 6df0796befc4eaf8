package domain

import "time"

// Event is the union of the payloads arriving on the "reviews" and
// "bookings" topics. Fields absent from a given payload stay zero.
type Event struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	BookingID    int       `json:"booking_id"`
	Rating       int       `json:"rating"`
	PartySize    int       `json:"party_size"`
	Date         string    `json:"date"`
	Timestamp    time.Time `json:"timestamp"`
}
