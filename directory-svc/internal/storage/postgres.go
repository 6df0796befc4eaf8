package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"tablescout/directory-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
		COALESCE(website, ''), cuisine, COALESCE(description, ''), opening_hours,
		average_rating, review_count, price_level, latitude, longitude, is_verified, created_at`

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	row := r.DB.QueryRow(`
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE id = $1`, id)

	restaurant, err := scanRestaurant(row)
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT ` + restaurantColumns + `
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) InsertBooking(booking *domain.Booking) error {
	return r.DB.QueryRow(`
		INSERT INTO bookings (restaurant_id, date, party_size, customer_name, customer_email, customer_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		booking.RestaurantID, booking.Date, booking.PartySize,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PostgresRepository) SaveConfirmationCode(bookingID int, code []byte) error {
	_, err := r.DB.Exec("UPDATE bookings SET qr_code = $1 WHERE id = $2", code, bookingID)
	return err
}

func (r *PostgresRepository) GetConfirmationCode(bookingID int) ([]byte, error) {
	var code []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM bookings WHERE id = $1", bookingID).Scan(&code); err != nil {
		return nil, err
	}
	return code, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		"ALTER TABLE IF EXISTS bookings ADD COLUMN IF NOT EXISTS qr_code BYTEA",
		"ALTER TABLE IF EXISTS bookings ADD COLUMN IF NOT EXISTS status VARCHAR(50) NOT NULL DEFAULT 'confirmed'",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var hoursJSON []byte

	err := row.Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.Phone,
		&restaurant.Email, &restaurant.Website, &restaurant.Cuisine, &restaurant.Description,
		&hoursJSON, &restaurant.AverageRating, &restaurant.ReviewCount, &restaurant.PriceLevel,
		&restaurant.Latitude, &restaurant.Longitude, &restaurant.IsVerified, &restaurant.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &restaurant.OpeningHours); err != nil {
			return nil, fmt.Errorf("restaurant %d: opening hours: %w", restaurant.ID, err)
		}
	}
	return &restaurant, nil
}
