package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"tablescout/directory-svc/internal/domain"
)

var (
	ErrInvalidPartySize     = errors.New("party size must be positive")
	ErrOutsideBookingWindow = errors.New("requested time is outside the booking window")
)

type BookingService struct {
	restaurants RestaurantRepository
	bookings    BookingRepository
	publisher   BookingPublisher
	qrEncoder   QRGenerator
}

func NewBookingService(restaurants RestaurantRepository, bookings BookingRepository, publisher BookingPublisher, qrEncoder QRGenerator) *BookingService {
	return &BookingService{
		restaurants: restaurants,
		bookings:    bookings,
		publisher:   publisher,
		qrEncoder:   qrEncoder,
	}
}

// Book validates the request against the restaurant's schedule and, only
// after it passes, hands the write to the repository. Validation failures
// are returned as typed errors; a failed write comes back as an unconfirmed
// BookingResult so callers can render it without a crash path.
func (s *BookingService) Book(ctx context.Context, request domain.BookingRequest) (*domain.BookingResult, error) {
	if request.PartySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	day, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	requested, err := domain.ClockMinutes(request.Time)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.GetRestaurant(request.RestaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}

	hours, open := restaurant.OpeningHours.HoursOn(day)
	if !open {
		return nil, ErrClosedThatDay
	}

	openAt, err := domain.ClockMinutes(hours.Open)
	if err != nil {
		return nil, err
	}
	closeAt, err := domain.ClockMinutes(hours.Close)
	if err != nil {
		return nil, err
	}

	// A booking cannot start less than one slot interval before closing.
	if requested < openAt || requested > closeAt-domain.SlotIntervalMinutes {
		return nil, ErrOutsideBookingWindow
	}

	booking := &domain.Booking{
		RestaurantID:  request.RestaurantID,
		Date:          combineDateTime(day, requested),
		PartySize:     request.PartySize,
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		Status:        "confirmed",
	}

	result := &domain.BookingResult{
		RestaurantID: request.RestaurantID,
		Date:         request.Date,
		Time:         request.Time,
		PartySize:    request.PartySize,
	}

	if err := s.bookings.InsertBooking(booking); err != nil {
		log.Printf("Failed to create booking for restaurant %d: %v", request.RestaurantID, err)
		return result, nil
	}

	result.Success = true
	result.BookingID = booking.ID

	if s.qrEncoder != nil {
		if code, err := s.qrEncoder.Generate(booking.ID); err == nil {
			_ = s.bookings.SaveConfirmationCode(booking.ID, code)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishBooking(ctx, domain.BookingEvent{
			Type:         "new_booking",
			BookingID:    booking.ID,
			RestaurantID: booking.RestaurantID,
			PartySize:    booking.PartySize,
			Date:         request.Date,
			Timestamp:    time.Now(),
		})
	}

	return result, nil
}

func (s *BookingService) ConfirmationCode(bookingID int) ([]byte, error) {
	code, err := s.bookings.GetConfirmationCode(bookingID)
	if err != nil {
		return nil, err
	}
	if len(code) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(bookingID); err == nil {
			_ = s.bookings.SaveConfirmationCode(bookingID, regenerated)
			return regenerated, nil
		}
	}
	return code, nil
}

func combineDateTime(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
}
