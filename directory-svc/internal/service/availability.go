package service

import "math/rand"

// MaxWalkInPartySize gates the demo availability heuristic; larger parties
// are never offered a slot by it.
const MaxWalkInPartySize = 8

// RandomAvailability is a placeholder predicate producing plausible demo
// data. It ignores existing bookings entirely, so its answers carry no
// correctness guarantee. TODO: replace with a conflict check against the
// bookings table once a seating capacity model is defined.
type RandomAvailability struct{}

func (RandomAvailability) IsSlotAvailable(restaurantID int, slot string, partySize int) bool {
	return rand.Float64() > 0.3 && partySize <= MaxWalkInPartySize
}

var _ SlotAvailability = RandomAvailability{}

// AvailabilityFunc adapts a plain function to the SlotAvailability interface.
type AvailabilityFunc func(restaurantID int, slot string, partySize int) bool

func (f AvailabilityFunc) IsSlotAvailable(restaurantID int, slot string, partySize int) bool {
	return f(restaurantID, slot, partySize)
}
