package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablescout/directory-svc/internal/domain"
	"tablescout/directory-svc/internal/mocks"
	"tablescout/directory-svc/internal/service"
)

func bistro() *domain.Restaurant {
	return &domain.Restaurant{
		ID:   1,
		Name: "Le Petit Bistro",
		OpeningHours: domain.WeeklySchedule{
			"mon": {Open: "09:00", Close: "22:00"},
		},
	}
}

func TestTimeSlots_FullDay(t *testing.T) {
	repository := mocks.NewRestaurantRepository(t)
	availability := mocks.NewSlotAvailability(t)
	repository.On("GetRestaurant", 1).Return(bistro(), nil).Once()
	availability.On("IsSlotAvailable", 1, mock.AnythingOfType("string"), 4).Return(true)

	svc := service.NewTimetableService(repository, availability)
	timetable, err := svc.TimeSlots(1, "2025-06-02", 4)

	assert.NoError(t, err)
	assert.Equal(t, "Le Petit Bistro", timetable.RestaurantName)
	assert.Equal(t, "2025-06-02", timetable.Date)
	assert.Len(t, timetable.TimeSlots, 26)
	assert.Equal(t, domain.TimeSlot{Time: "09:00", Available: true}, timetable.TimeSlots[0])
	assert.Equal(t, "21:30", timetable.TimeSlots[25].Time)
}

func TestTimeSlots_AvailabilityPerSlot(t *testing.T) {
	repository := mocks.NewRestaurantRepository(t)
	availability := mocks.NewSlotAvailability(t)
	repository.On("GetRestaurant", 1).Return(bistro(), nil).Once()
	availability.On("IsSlotAvailable", 1, "09:00", 2).Return(false).Once()
	availability.On("IsSlotAvailable", 1, mock.AnythingOfType("string"), 2).Return(true)

	svc := service.NewTimetableService(repository, availability)
	timetable, err := svc.TimeSlots(1, "2025-06-02", 2)

	assert.NoError(t, err)
	assert.False(t, timetable.TimeSlots[0].Available)
	assert.True(t, timetable.TimeSlots[1].Available)
}

func TestTimeSlots_Errors(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID int
		date         string
		prepareMocks func(*mocks.RestaurantRepository)
		wantErr      error
	}{
		{
			name:         "restaurant not found",
			restaurantID: 99,
			date:         "2025-06-02",
			prepareMocks: func(repository *mocks.RestaurantRepository) {
				repository.On("GetRestaurant", 99).Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: service.ErrRestaurantNotFound,
		},
		{
			name:         "closed that day",
			restaurantID: 1,
			date:         "2025-06-03", // Tuesday, absent from the schedule
			prepareMocks: func(repository *mocks.RestaurantRepository) {
				repository.On("GetRestaurant", 1).Return(bistro(), nil).Once()
			},
			wantErr: service.ErrClosedThatDay,
		},
		{
			name:         "malformed date",
			restaurantID: 1,
			date:         "06/02/2025",
			prepareMocks: func(repository *mocks.RestaurantRepository) {},
			wantErr:      service.ErrInvalidDate,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewRestaurantRepository(t)
			availability := mocks.NewSlotAvailability(t)
			testCase.prepareMocks(repository)

			svc := service.NewTimetableService(repository, availability)
			timetable, err := svc.TimeSlots(testCase.restaurantID, testCase.date, 2)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, timetable)
		})
	}
}

func TestRandomAvailability_PartySizeGate(t *testing.T) {
	predicate := service.RandomAvailability{}

	// The heuristic is random for small parties but always refuses parties
	// above the walk-in gate.
	for i := 0; i < 50; i++ {
		assert.False(t, predicate.IsSlotAvailable(1, "12:00", service.MaxWalkInPartySize+1))
	}
}
