package booking

import (
	"context"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
}

type BookingService struct {
	bookings repository.BookingRepository
}

type CreateBookingInput struct {
	FlightID      int64
	PassengerName string
	SeatCount     int
}

func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

// CreateBooking reserves seats on the flight and records the booking as one
// unit. The returned booking carries the generated reference the passenger
// needs to look it up or cancel it later.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	booking, err := domain.NewBooking(input.FlightID, input.PassengerName, input.SeatCount)
	if err != nil {
		return nil, err
	}
	booking.Reference = uuid.NewString()

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

// CancelBooking releases the booking's seats back to the flight and marks it
// cancelled. Cancelling the same booking twice fails with
// domain.ErrAlreadyCancelled.
func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.Cancel(ctx, reference)
}

var _ BookingUseCase = (*BookingService)(nil)
