package tests

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablescout/directory-svc/internal/domain"
	"tablescout/directory-svc/internal/storage"
)

func restaurantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "address", "phone", "email", "website", "cuisine", "description",
		"opening_hours", "average_rating", "review_count", "price_level",
		"latitude", "longitude", "is_verified", "created_at",
	})
}

func TestPostgresGetRestaurant(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	hours := []byte(`{"mon":{"open":"09:00","close":"22:00"}}`)
	mock.ExpectQuery(`(?s)SELECT .+ FROM restaurants\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(restaurantRows().AddRow(
			1, "Trattoria Roma", "Main St 1", "+49 30 1234", "roma@example.com", "https://roma.example.com",
			"italian", "Wood-fired pizza", hours, 4.6, 120, 2, 52.52, 13.405, true, time.Now(),
		))

	repo := storage.NewPostgresRepository(db)
	restaurant, err := repo.GetRestaurant(1)

	require.NoError(t, err)
	assert.Equal(t, "Trattoria Roma", restaurant.Name)
	assert.Equal(t, domain.CuisineItalian, restaurant.Cuisine)
	assert.Equal(t, domain.DayHours{Open: "09:00", Close: "22:00"}, restaurant.OpeningHours["mon"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListRestaurants_SkipsCorruptRow(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM restaurants\s+ORDER BY id`).
		WillReturnRows(restaurantRows().
			AddRow(1, "Trattoria Roma", "", "", "", "", "italian", "", []byte(`{}`), 4.6, 120, 2, 52.52, 13.405, true, time.Now()).
			AddRow(2, "Broken", "", "", "", "", "thai", "", []byte(`not json`), 4.0, 10, 1, 0.0, 0.0, false, time.Now()))

	repo := storage.NewPostgresRepository(db)
	restaurants, err := repo.ListRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, 1, restaurants[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertBooking(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(1, sqlmock.AnyArg(), 4, "Ada", "ada@example.com", "", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

	repo := storage.NewPostgresRepository(db)
	booking := &domain.Booking{
		RestaurantID:  1,
		Date:          time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC),
		PartySize:     4,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Status:        "confirmed",
	}

	require.NoError(t, repo.InsertBooking(booking))
	assert.Equal(t, 42, booking.ID)
	assert.Equal(t, created, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConfirmationCode(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET qr_code").
		WithArgs([]byte("png"), 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT qr_code FROM bookings").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow([]byte("png")))

	repo := storage.NewPostgresRepository(db)

	require.NoError(t, repo.SaveConfirmationCode(42, []byte("png")))
	code, err := repo.GetConfirmationCode(42)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSearchCache_RoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewRedisSearchCache(client, time.Minute)
	ctx := context.Background()

	criteria := domain.SearchCriteria{Cuisines: []domain.Cuisine{domain.CuisineThai}, Page: 2}
	key := cache.SearchKey(criteria)
	assert.Equal(t, "search:"+criteria.CacheKey(), key)

	_, ok := cache.GetResult(ctx, key)
	assert.False(t, ok)

	stored := &domain.SearchResult{
		Results: []domain.Restaurant{{ID: 3, Name: "Sakura"}},
		Total:   7,
	}
	require.NoError(t, cache.SetResult(ctx, key, stored))

	loaded, ok := cache.GetResult(ctx, key)
	require.True(t, ok)
	assert.Equal(t, 7, loaded.Total)
	require.Len(t, loaded.Results, 1)
	assert.Equal(t, "Sakura", loaded.Results[0].Name)
}

func TestRedisSearchCache_Expiry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := storage.NewRedisSearchCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetResult(ctx, "search:all", &domain.SearchResult{Total: 1}))
	server.FastForward(2 * time.Minute)

	_, ok := cache.GetResult(ctx, "search:all")
	assert.False(t, ok)
}
