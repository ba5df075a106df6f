package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking holds seats on a flight for one passenger. Reference is the
// identifier passengers use to look the booking up or cancel it; ID is the
// internal row key.
type Booking struct {
	ID            int64
	Reference     string
	FlightID      int64
	PassengerName string
	SeatCount     int
	TotalCents    int64
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBooking validates the passenger input for a booking request. Flight
// lookup, capacity checks, and pricing happen when the booking is persisted.
func NewBooking(flightID int64, passengerName string, seatCount int) (*Booking, error) {
	passengerName = strings.TrimSpace(passengerName)

	if passengerName == "" {
		return nil, invalid(ErrEmptyPassenger)
	}
	if seatCount <= 0 {
		return nil, invalid(ErrInvalidSeatCount)
	}

	return &Booking{
		FlightID:      flightID,
		PassengerName: passengerName,
		SeatCount:     seatCount,
	}, nil
}
