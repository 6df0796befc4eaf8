package domain

import "time"

type Cuisine string

const (
	CuisineItalian  Cuisine = "italian"
	CuisineFrench   Cuisine = "french"
	CuisineJapanese Cuisine = "japanese"
	CuisineChinese  Cuisine = "chinese"
	CuisineIndian   Cuisine = "indian"
	CuisineMexican  Cuisine = "mexican"
	CuisineThai     Cuisine = "thai"
	CuisineGreek    Cuisine = "greek"
	CuisineSpanish  Cuisine = "spanish"
	CuisineAmerican Cuisine = "american"
)

type Restaurant struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Website       string         `json:"website"`
	Cuisine       Cuisine        `json:"cuisine"`
	Description   string         `json:"description"`
	OpeningHours  WeeklySchedule `json:"opening_hours"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
	PriceLevel    int            `json:"price_level"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	IsVerified    bool           `json:"is_verified"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Location returns the restaurant's fixed coordinates as a GeoPoint.
func (r Restaurant) Location() GeoPoint {
	return GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude}
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type TimeTable struct {
	RestaurantName string     `json:"restaurant_name"`
	Date           string     `json:"date"`
	TimeSlots      []TimeSlot `json:"time_slots"`
}

type Booking struct {
	ID            int       `json:"id"`
	RestaurantID  int       `json:"restaurant_id"`
	Date          time.Time `json:"date"`
	PartySize     int       `json:"party_size"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingRequest struct {
	RestaurantID  int    `json:"restaurant_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"party_size"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// BookingResult is a tagged outcome: Success=false means the booking was
// validated but not confirmed (backend write failed), not a caller error.
type BookingResult struct {
	Success      bool   `json:"success"`
	BookingID    int    `json:"booking_id,omitempty"`
	RestaurantID int    `json:"restaurant_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
}

type SearchResult struct {
	Results []Restaurant `json:"results"`
	Total   int          `json:"total"`
}

type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    int       `json:"booking_id"`
	RestaurantID int       `json:"restaurant_id"`
	PartySize    int       `json:"party_size"`
	Date         string    `json:"date"`
	Timestamp    time.Time `json:"timestamp"`
}
