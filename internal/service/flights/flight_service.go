package flights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/repository"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	Search(ctx context.Context, input SearchInput) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	AdjustSeats(ctx context.Context, flightID int64, delta int) (*domain.Flight, error)
}

type FlightService struct {
	repo repository.FlightRepository
}

type AddFlightInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	DepartureTime string
	PriceCents    int64
	TotalSeats    int
}

type SearchInput struct {
	Origin      string
	Destination string
	Date        string
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

// AddFlight validates the admin input and stores a new flight with every
// seat available. Duplicate routes and dates are allowed; each call creates
// a distinct flight.
func (s *FlightService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	flight, err := domain.NewFlight(input.Origin, input.Destination, input.DepartureDate, input.DepartureTime, input.PriceCents, input.TotalSeats)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Search returns flights matching every non-empty criterion, ordered by
// departure date, then time, then id. No matches is an empty result, not an
// error.
func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.Flight, error) {
	origin := strings.TrimSpace(input.Origin)
	destination := strings.TrimSpace(input.Destination)
	date := strings.TrimSpace(input.Date)

	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrInvalidDate)
		}
	}

	return s.repo.Search(ctx, repository.FlightFilter{
		Origin:      origin,
		Destination: destination,
		Date:        date,
	})
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// AdjustSeats changes a flight's availability by delta, e.g. for manual
// corrections. The store rejects any change that would leave availability
// below zero or above the flight's capacity.
func (s *FlightService) AdjustSeats(ctx context.Context, flightID int64, delta int) (*domain.Flight, error) {
	return s.repo.AdjustSeats(ctx, flightID, delta)
}

var _ FlightUseCase = (*FlightService)(nil)
