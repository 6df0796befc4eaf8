package tests

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "tablescout/review-svc/internal/api/http"
	"tablescout/review-svc/internal/domain"
	"tablescout/review-svc/internal/mocks"
	"tablescout/review-svc/internal/service"
)

func newReviewServer(t *testing.T, repository *mocks.ReviewRepository, cache *mocks.ReviewCache) *httptest.Server {
	t.Helper()

	handler := httpapi.NewHandler(service.NewReviewService(repository, cache, nil))
	server := httptest.NewServer(httpapi.NewRouter(handler))
	t.Cleanup(server.Close)
	return server
}

func allowSubmission(repository *mocks.ReviewRepository, cache *mocks.ReviewCache, bookingID, restaurantID int) {
	repository.On("ValidateBooking", bookingID, restaurantID).Return(true, nil).Once()
	cache.On("ReviewMarkerKey", bookingID, restaurantID).Return("marker").Once()
	cache.On("Exists", mock.Anything, "marker").Return(false, nil).Once()
	repository.On("GetExistingReviewID", bookingID, restaurantID).Return(0, sql.ErrNoRows).Once()
	cache.On("SetMarker", mock.Anything, "marker").Return(nil).Once()
}

func TestCreateReviewEndpoint(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	allowSubmission(repository, cache, 42, 1)
	repository.On("InsertReview", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Review).ID = 7
		}).Return(nil).Once()

	server := newReviewServer(t, repository, cache)

	body := `{"booking_id":42,"rating":5,"comment":"Lovely","author_name":"Ada"}`
	response, err := http.Post(server.URL+"/api/restaurants/1/reviews", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusCreated, response.StatusCode)

	var created domain.Review
	require.NoError(t, json.NewDecoder(response.Body).Decode(&created))
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, 1, created.RestaurantID)
}

func TestCreateReviewEndpoint_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMocks func(*mocks.ReviewRepository, *mocks.ReviewCache)
		wantStatus   int
	}{
		{
			name:         "rating out of range",
			body:         `{"booking_id":42,"rating":9}`,
			prepareMocks: func(*mocks.ReviewRepository, *mocks.ReviewCache) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "no confirmed booking",
			body: `{"booking_id":42,"rating":4}`,
			prepareMocks: func(repository *mocks.ReviewRepository, cache *mocks.ReviewCache) {
				repository.On("ValidateBooking", 42, 1).Return(false, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "double submission",
			body: `{"booking_id":42,"rating":4}`,
			prepareMocks: func(repository *mocks.ReviewRepository, cache *mocks.ReviewCache) {
				repository.On("ValidateBooking", 42, 1).Return(true, nil).Once()
				cache.On("ReviewMarkerKey", 42, 1).Return("marker").Once()
				cache.On("Exists", mock.Anything, "marker").Return(true, nil).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewReviewRepository(t)
			cache := mocks.NewReviewCache(t)
			testCase.prepareMocks(repository, cache)

			server := newReviewServer(t, repository, cache)

			response, err := http.Post(server.URL+"/api/restaurants/1/reviews", "application/json", strings.NewReader(testCase.body))
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, testCase.wantStatus, response.StatusCode)
		})
	}
}

func TestGetRestaurantReviewsEndpoint(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	repository.On("ListRestaurantReviews", 1).
		Return([]domain.Review{{ID: 7, RestaurantID: 1, BookingID: 42, Rating: 5}}, nil).Once()

	server := newReviewServer(t, repository, mocks.NewReviewCache(t))

	response, err := http.Get(server.URL + "/api/restaurants/1/reviews")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var reviews []domain.Review
	require.NoError(t, json.NewDecoder(response.Body).Decode(&reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestRatingSummaryEndpoint(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	repository.On("RatingDistribution", 1).
		Return(map[string]int{"1": 0, "2": 0, "3": 1, "4": 2, "5": 4}, nil).Once()

	server := newReviewServer(t, repository, mocks.NewReviewCache(t))

	response, err := http.Get(server.URL + "/api/restaurants/1/reviews/summary")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var summary struct {
		RestaurantID int            `json:"restaurant_id"`
		Distribution map[string]int `json:"distribution"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&summary))
	assert.Equal(t, 1, summary.RestaurantID)
	assert.Equal(t, 4, summary.Distribution["5"])
}

func TestBulkReviewsEndpoint(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	allowSubmission(repository, cache, 42, 1)
	repository.On("InsertReview", mock.Anything).Return(nil).Once()
	repository.On("ValidateBooking", 43, 1).Return(false, nil).Once()

	server := newReviewServer(t, repository, cache)

	body := `{"restaurant_id":1,"reviews":[{"booking_id":42,"rating":5},{"booking_id":43,"rating":3}]}`
	response, err := http.Post(server.URL+"/api/reviews", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusCreated, response.StatusCode)

	var outcome struct {
		Created int `json:"created"`
		Failed  int `json:"failed"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&outcome))
	assert.Equal(t, 1, outcome.Created)
	assert.Equal(t, 1, outcome.Failed)
}

func TestBulkReviewsEndpoint_EmptyPayload(t *testing.T) {
	server := newReviewServer(t, mocks.NewReviewRepository(t), mocks.NewReviewCache(t))

	response, err := http.Post(server.URL+"/api/reviews", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
