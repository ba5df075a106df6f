package domain

import (
	"strings"
	"time"
)

// Layouts for the departure date and time-of-day fields. Both are stored as
// text, so lexicographic order matches chronological order.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Flight struct {
	ID             int64
	Origin         string
	Destination    string
	DepartureDate  string // YYYY-MM-DD
	DepartureTime  string // HH:MM, 24-hour
	PriceCents     int64
	TotalSeats     int
	AvailableSeats int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFlight validates the admin input and returns a flight with every seat
// available.
func NewFlight(origin, destination, departureDate, departureTime string, priceCents int64, totalSeats int) (*Flight, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if origin == "" {
		return nil, invalid(ErrEmptyOrigin)
	}
	if destination == "" {
		return nil, invalid(ErrEmptyDestination)
	}
	if _, err := time.Parse(DateLayout, departureDate); err != nil {
		return nil, invalid(ErrInvalidDate)
	}
	depTime, err := time.Parse(TimeLayout, departureTime)
	if err != nil {
		return nil, invalid(ErrInvalidTime)
	}
	// Parse accepts an unpadded hour ("8:00"); store the zero-padded form.
	departureTime = depTime.Format(TimeLayout)
	if priceCents <= 0 {
		return nil, invalid(ErrInvalidPrice)
	}
	if totalSeats <= 0 {
		return nil, invalid(ErrInvalidSeatTotal)
	}

	return &Flight{
		Origin:         origin,
		Destination:    destination,
		DepartureDate:  departureDate,
		DepartureTime:  departureTime,
		PriceCents:     priceCents,
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
	}, nil
}
