package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
)

// FlightFilter narrows Search to flights matching every non-empty field.
type FlightFilter struct {
	Origin      string
	Destination string
	Date        string
}

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Search(ctx context.Context, filter FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	AdjustSeats(ctx context.Context, flightID int64, delta int) (*domain.Flight, error)
}

type SQLiteFlightRepository struct {
	store *Store
}

func NewFlightRepository(store *Store) FlightRepository {
	return &SQLiteFlightRepository{store: store}
}

const flightColumns = `id, origin, destination, departure_date, departure_time, price_cents, total_seats, available_seats, created_at, updated_at`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(row rowScanner) (*domain.Flight, error) {
	var f domain.Flight
	var createdAt, updatedAt string
	if err := row.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureDate, &f.DepartureTime, &f.PriceCents, &f.TotalSeats, &f.AvailableSeats, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	f.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &f, nil
}

func (r *SQLiteFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	now := time.Now().UTC()
	ts := now.Format(time.RFC3339)

	res, err := r.store.db.ExecContext(ctx, `INSERT INTO flights (origin, destination, departure_date, departure_time, price_cents, total_seats, available_seats, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		flight.Origin, flight.Destination, flight.DepartureDate, flight.DepartureTime, flight.PriceCents, flight.TotalSeats, flight.AvailableSeats, ts, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	flight.ID = id
	flight.CreatedAt = now
	flight.UpdatedAt = now
	return nil
}

func (r *SQLiteFlightRepository) Search(ctx context.Context, filter FlightFilter) ([]domain.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights`

	var conditions []string
	var args []any
	if filter.Origin != "" {
		conditions = append(conditions, "origin = ?")
		args = append(args, filter.Origin)
	}
	if filter.Destination != "" {
		conditions = append(conditions, "destination = ?")
		args = append(args, filter.Destination)
	}
	if filter.Date != "" {
		conditions = append(conditions, "departure_date = ?")
		args = append(args, filter.Date)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY departure_date, departure_time, id"

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *SQLiteFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, id)
	f, err := scanFlight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AdjustSeats applies delta to the flight's availability inside one
// transaction, rejecting any change that would leave it outside 0..total.
func (r *SQLiteFlightRepository) AdjustSeats(ctx context.Context, flightID int64, delta int) (*domain.Flight, error) {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var total, available int
	err = tx.QueryRowContext(ctx, `SELECT total_seats, available_seats FROM flights WHERE id = ?`, flightID).Scan(&total, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}

	next := available + delta
	if next < 0 {
		return nil, domain.ErrNotEnoughSeats
	}
	if next > total {
		return nil, domain.ErrSeatsExceedTotal
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `UPDATE flights SET available_seats = ?, updated_at = ? WHERE id = ?`, next, ts, flightID); err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, flightID)
	f, err := scanFlight(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return f, nil
}

var _ FlightRepository = (*SQLiteFlightRepository)(nil)
