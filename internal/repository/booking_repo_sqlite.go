package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Cancel(ctx context.Context, reference string) (*domain.Booking, error)
}

type SQLiteBookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) BookingRepository {
	return &SQLiteBookingRepository{store: store}
}

const bookingColumns = `id, reference, flight_id, passenger_name, seat_count, total_cents, status, created_at, updated_at`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var status, createdAt, updatedAt string
	if err := row.Scan(&b.ID, &b.Reference, &b.FlightID, &b.PassengerName, &b.SeatCount, &b.TotalCents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatus(status)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &b, nil
}

// Create takes the requested seats from the flight and inserts the confirmed
// booking in one transaction, so a failure on either side leaves both tables
// untouched.
func (r *SQLiteBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var priceCents int64
	var available int
	err = tx.QueryRowContext(ctx, `SELECT price_cents, available_seats FROM flights WHERE id = ?`, booking.FlightID).Scan(&priceCents, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrFlightNotFound
	}
	if err != nil {
		return err
	}
	if booking.SeatCount > available {
		return domain.ErrNotEnoughSeats
	}

	now := time.Now().UTC()
	ts := now.Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `UPDATE flights SET available_seats = available_seats - ?, updated_at = ? WHERE id = ?`, booking.SeatCount, ts, booking.FlightID); err != nil {
		return err
	}

	booking.Status = domain.BookingStatusConfirmed
	booking.TotalCents = priceCents * int64(booking.SeatCount)

	res, err := tx.ExecContext(ctx, `INSERT INTO bookings (reference, flight_id, passenger_name, seat_count, total_cents, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.Reference, booking.FlightID, booking.PassengerName, booking.SeatCount, booking.TotalCents, string(booking.Status), ts, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	booking.ID = id
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return tx.Commit()
}

func (r *SQLiteBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference = ?`, reference)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel marks the booking cancelled and returns its seats to the flight in
// one transaction. Cancelling an already cancelled booking fails without
// touching the seat count.
func (r *SQLiteBookingRepository) Cancel(ctx context.Context, reference string) (*domain.Booking, error) {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference = ?`, reference)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	var total, available int
	err = tx.QueryRowContext(ctx, `SELECT total_seats, available_seats FROM flights WHERE id = ?`, b.FlightID).Scan(&total, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	if available+b.SeatCount > total {
		return nil, domain.ErrSeatsExceedTotal
	}

	now := time.Now().UTC()
	ts := now.Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `UPDATE flights SET available_seats = available_seats + ?, updated_at = ? WHERE id = ?`, b.SeatCount, ts, b.FlightID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ?, updated_at = ? WHERE reference = ?`, string(domain.BookingStatusCancelled), ts, reference); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = now
	return b, nil
}

var _ BookingRepository = (*SQLiteBookingRepository)(nil)
