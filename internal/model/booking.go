package model

import (
	"strings"
	"time"
)

// BookingStatus is the owner's decision on a booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Approval is terminal. A rejected booking may be rejected again or approved later.
var bookingTransitions = map[BookingStatus]map[BookingStatus]struct{}{
	BookingStatusWaiting:  {BookingStatusApproved: {}, BookingStatusRejected: {}},
	BookingStatusRejected: {BookingStatusRejected: {}, BookingStatusApproved: {}},
	BookingStatusApproved: {},
}

// CanTransition reports whether a booking in status from may move to status to.
func (from BookingStatus) CanTransition(to BookingStatus) bool {
	allowed, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Booking is a request by a booker to rent an item for [Start, End).
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus
	Item   Item
	Booker User
}

// BookingState selects which of a user's bookings to list.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

var bookingStates = map[BookingState]struct{}{
	BookingStateAll:      {},
	BookingStateCurrent:  {},
	BookingStatePast:     {},
	BookingStateFuture:   {},
	BookingStateWaiting:  {},
	BookingStateRejected: {},
}

// ParseBookingState parses a state keyword case-insensitively.
// ok is false for anything outside the six known states.
func ParseBookingState(raw string) (BookingState, bool) {
	st := BookingState(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := bookingStates[st]; !ok {
		return "", false
	}
	return st, true
}

// Valid reports whether s is one of the known states.
func (s BookingState) Valid() bool {
	_, ok := bookingStates[s]
	return ok
}
