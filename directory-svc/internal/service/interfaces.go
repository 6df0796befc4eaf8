package service

import (
	"context"

	"tablescout/directory-svc/internal/domain"
)

type RestaurantRepository interface {
	GetRestaurant(id int) (*domain.Restaurant, error)
	ListRestaurants() ([]domain.Restaurant, error)
}

type BookingRepository interface {
	InsertBooking(booking *domain.Booking) error
	SaveConfirmationCode(bookingID int, code []byte) error
	GetConfirmationCode(bookingID int) ([]byte, error)
}

type SearchCache interface {
	SearchKey(criteria domain.SearchCriteria) string
	GetResult(ctx context.Context, key string) (*domain.SearchResult, bool)
	SetResult(ctx context.Context, key string, result *domain.SearchResult) error
}

type BookingPublisher interface {
	PublishBooking(ctx context.Context, event domain.BookingEvent) error
}

// SlotAvailability decides whether a single slot can take the party.
// The default implementation is a demo heuristic; a real conflict check
// against existing bookings can replace it without touching slot math.
type SlotAvailability interface {
	IsSlotAvailable(restaurantID int, slot string, partySize int) bool
}

type QRGenerator interface {
	Generate(bookingID int) ([]byte, error)
}

type SearchServiceInterface interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
	Get(id int) (*domain.Restaurant, error)
}

type TimetableServiceInterface interface {
	TimeSlots(restaurantID int, date string, partySize int) (*domain.TimeTable, error)
}

type BookingServiceInterface interface {
	Book(ctx context.Context, request domain.BookingRequest) (*domain.BookingResult, error)
	ConfirmationCode(bookingID int) ([]byte, error)
}

var _ SearchServiceInterface = (*SearchService)(nil)
var _ TimetableServiceInterface = (*TimetableService)(nil)
var _ BookingServiceInterface = (*BookingService)(nil)
