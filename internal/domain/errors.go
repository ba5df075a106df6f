package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput wraps every validation failure so callers can match the
// whole class with a single errors.Is check.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyOrigin      = errors.New("origin is required")
	ErrEmptyDestination = errors.New("destination is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrInvalidSeatTotal = errors.New("total seats must be greater than zero")
	ErrEmptyPassenger   = errors.New("passenger name is required")
	ErrInvalidSeatCount = errors.New("seat count must be greater than zero")
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrNotEnoughSeats   = errors.New("not enough seats available")
	ErrSeatsExceedTotal = errors.New("available seats cannot exceed total seats")

	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
