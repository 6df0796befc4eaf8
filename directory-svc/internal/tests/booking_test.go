package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablescout/directory-svc/internal/domain"
	"tablescout/directory-svc/internal/mocks"
	"tablescout/directory-svc/internal/service"
)

func bookingRequest(clock string) domain.BookingRequest {
	return domain.BookingRequest{
		RestaurantID:  1,
		Date:          "2025-06-02", // a Monday
		Time:          clock,
		PartySize:     4,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
	}
}

func TestBook_Accepted(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	bookings := mocks.NewBookingRepository(t)
	publisher := mocks.NewBookingPublisher(t)
	qrEncoder := mocks.NewQRGenerator(t)

	restaurants.On("GetRestaurant", 1).Return(bistro(), nil).Once()
	bookings.On("InsertBooking", mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			booking := args.Get(0).(*domain.Booking)
			booking.ID = 42
			assert.Equal(t, "confirmed", booking.Status)
			assert.Equal(t, 2025, booking.Date.Year())
			assert.Equal(t, 21, booking.Date.Hour())
			assert.Equal(t, 30, booking.Date.Minute())
		}).Return(nil).Once()
	qrEncoder.On("Generate", 42).Return([]byte("png"), nil).Once()
	bookings.On("SaveConfirmationCode", 42, []byte("png")).Return(nil).Once()
	publisher.On("PublishBooking", mock.Anything, mock.AnythingOfType("domain.BookingEvent")).Return(nil).Once()

	svc := service.NewBookingService(restaurants, bookings, publisher, qrEncoder)
	result, err := svc.Book(context.Background(), bookingRequest("21:30"))

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 42, result.BookingID)
	assert.Equal(t, "21:30", result.Time)
}

func TestBook_LastHalfHourRejected(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	bookings := mocks.NewBookingRepository(t)
	restaurants.On("GetRestaurant", 1).Return(bistro(), nil).Once()

	svc := service.NewBookingService(restaurants, bookings, nil, nil)
	result, err := svc.Book(context.Background(), bookingRequest("21:45"))

	assert.ErrorIs(t, err, service.ErrOutsideBookingWindow)
	assert.Nil(t, result)
	bookings.AssertNotCalled(t, "InsertBooking")
}

func TestBook_ValidationFailures(t *testing.T) {
	tests := []struct {
		name         string
		request      domain.BookingRequest
		prepareMocks func(*mocks.RestaurantRepository)
		wantErr      error
	}{
		{
			name:    "before opening",
			request: bookingRequest("08:30"),
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {
				restaurants.On("GetRestaurant", 1).Return(bistro(), nil).Once()
			},
			wantErr: service.ErrOutsideBookingWindow,
		},
		{
			name: "closed that day",
			request: domain.BookingRequest{
				RestaurantID: 1, Date: "2025-06-03", Time: "12:00", PartySize: 2,
			},
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {
				restaurants.On("GetRestaurant", 1).Return(bistro(), nil).Once()
			},
			wantErr: service.ErrClosedThatDay,
		},
		{
			name: "restaurant missing",
			request: domain.BookingRequest{
				RestaurantID: 99, Date: "2025-06-02", Time: "12:00", PartySize: 2,
			},
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {
				restaurants.On("GetRestaurant", 99).Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: service.ErrRestaurantNotFound,
		},
		{
			name: "zero party size",
			request: domain.BookingRequest{
				RestaurantID: 1, Date: "2025-06-02", Time: "12:00", PartySize: 0,
			},
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {},
			wantErr:      service.ErrInvalidPartySize,
		},
		{
			name: "malformed time",
			request: domain.BookingRequest{
				RestaurantID: 1, Date: "2025-06-02", Time: "noonish", PartySize: 2,
			},
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {},
			wantErr:      domain.ErrInvalidClock,
		},
		{
			name: "malformed date",
			request: domain.BookingRequest{
				RestaurantID: 1, Date: "June 2nd", Time: "12:00", PartySize: 2,
			},
			prepareMocks: func(restaurants *mocks.RestaurantRepository) {},
			wantErr:      service.ErrInvalidDate,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			restaurants := mocks.NewRestaurantRepository(t)
			bookings := mocks.NewBookingRepository(t)
			testCase.prepareMocks(restaurants)

			svc := service.NewBookingService(restaurants, bookings, nil, nil)
			result, err := svc.Book(context.Background(), testCase.request)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
			bookings.AssertNotCalled(t, "InsertBooking")
		})
	}
}

func TestBook_WriteFailureIsUnconfirmedResult(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	bookings := mocks.NewBookingRepository(t)
	publisher := mocks.NewBookingPublisher(t)

	restaurants.On("GetRestaurant", 1).Return(bistro(), nil).Once()
	bookings.On("InsertBooking", mock.Anything).Return(assert.AnError).Once()

	svc := service.NewBookingService(restaurants, bookings, publisher, nil)
	result, err := svc.Book(context.Background(), bookingRequest("12:00"))

	assert.NoError(t, err, "a backend write failure is a result, not an error")
	assert.False(t, result.Success)
	assert.Zero(t, result.BookingID)
	assert.Equal(t, "2025-06-02", result.Date)
	assert.Equal(t, "12:00", result.Time)
	assert.Equal(t, 4, result.PartySize)
	publisher.AssertNotCalled(t, "PublishBooking")
}

func TestConfirmationCode_RegeneratesWhenMissing(t *testing.T) {
	bookings := mocks.NewBookingRepository(t)
	qrEncoder := mocks.NewQRGenerator(t)

	bookings.On("GetConfirmationCode", 7).Return([]byte{}, nil).Once()
	qrEncoder.On("Generate", 7).Return([]byte("fresh"), nil).Once()
	bookings.On("SaveConfirmationCode", 7, []byte("fresh")).Return(nil).Once()

	svc := service.NewBookingService(nil, bookings, nil, qrEncoder)
	code, err := svc.ConfirmationCode(7)

	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

func TestDefaultQRGenerator(t *testing.T) {
	generator := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}

	code, err := generator.Generate(123)

	assert.NoError(t, err)
	assert.NotEmpty(t, code)
}
