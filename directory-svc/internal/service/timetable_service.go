package service

import (
	"database/sql"
	"errors"
	"time"

	"tablescout/directory-svc/internal/domain"
)

var (
	ErrInvalidDate   = errors.New("invalid date, want YYYY-MM-DD")
	ErrClosedThatDay = errors.New("restaurant is closed on the requested day")
)

type TimetableService struct {
	repository   RestaurantRepository
	availability SlotAvailability
}

func NewTimetableService(repository RestaurantRepository, availability SlotAvailability) *TimetableService {
	return &TimetableService{
		repository:   repository,
		availability: availability,
	}
}

// TimeSlots lists the bookable 30-minute slots for a restaurant on a date.
// Slot boundary math comes from the schedule; each slot's availability flag
// comes from the pluggable SlotAvailability predicate.
func (s *TimetableService) TimeSlots(restaurantID int, date string, partySize int) (*domain.TimeTable, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	restaurant, err := s.repository.GetRestaurant(restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, open := restaurant.OpeningHours.HoursOn(day); !open {
		return nil, ErrClosedThatDay
	}

	times := restaurant.OpeningHours.SlotTimes(day)
	slots := make([]domain.TimeSlot, 0, len(times))
	for _, slotTime := range times {
		slots = append(slots, domain.TimeSlot{
			Time:      slotTime,
			Available: s.availability.IsSlotAvailable(restaurantID, slotTime, partySize),
		})
	}

	return &domain.TimeTable{
		RestaurantName: restaurant.Name,
		Date:           date,
		TimeSlots:      slots,
	}, nil
}
