package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle shared by the repositories. Open it once at
// startup and Close it when the process exits.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
// WAL mode and foreign key enforcement ride on the DSN, which the driver
// applies to every connection it opens, not just the first.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS flights (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		origin          TEXT    NOT NULL,
		destination     TEXT    NOT NULL,
		departure_date  TEXT    NOT NULL,
		departure_time  TEXT    NOT NULL,
		price_cents     INTEGER NOT NULL,
		total_seats     INTEGER NOT NULL,
		available_seats INTEGER NOT NULL,
		created_at      TEXT    NOT NULL,
		updated_at      TEXT    NOT NULL,
		CHECK (available_seats >= 0 AND available_seats <= total_seats)
	);

	CREATE INDEX IF NOT EXISTS idx_flights_route ON flights(origin, destination);
	CREATE INDEX IF NOT EXISTS idx_flights_date ON flights(departure_date);

	CREATE TABLE IF NOT EXISTS bookings (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		reference      TEXT    NOT NULL UNIQUE,
		flight_id      INTEGER NOT NULL REFERENCES flights(id),
		passenger_name TEXT    NOT NULL,
		seat_count     INTEGER NOT NULL,
		total_cents    INTEGER NOT NULL,
		status         TEXT    NOT NULL,
		created_at     TEXT    NOT NULL,
		updated_at     TEXT    NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_flight ON bookings(flight_id);
	`

	_, err := db.Exec(schema)
	return err
}

// sampleFlights pre-populates an empty store so a fresh install has
// something to search.
var sampleFlights = []domain.Flight{
	{Origin: "New York", Destination: "London", DepartureDate: "2026-07-01", DepartureTime: "08:00", PriceCents: 75000, TotalSeats: 150, AvailableSeats: 150},
	{Origin: "London", Destination: "Paris", DepartureDate: "2026-07-02", DepartureTime: "10:30", PriceCents: 20000, TotalSeats: 80, AvailableSeats: 80},
	{Origin: "Paris", Destination: "Rome", DepartureDate: "2026-07-03", DepartureTime: "14:00", PriceCents: 15000, TotalSeats: 100, AvailableSeats: 100},
	{Origin: "New York", Destination: "Tokyo", DepartureDate: "2026-07-10", DepartureTime: "18:00", PriceCents: 120000, TotalSeats: 200, AvailableSeats: 200},
	{Origin: "Tokyo", Destination: "Sydney", DepartureDate: "2026-07-12", DepartureTime: "22:00", PriceCents: 90000, TotalSeats: 120, AvailableSeats: 120},
}

// SeedSampleFlights inserts the sample rows when the flights table is empty
// and reports how many were added. The rows land in one transaction, so a
// failed seed leaves the table empty and the next run starts over.
func (s *Store) SeedSampleFlights(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ts := time.Now().UTC().Format(time.RFC3339)
	for _, f := range sampleFlights {
		_, err := tx.ExecContext(ctx, `INSERT INTO flights (origin, destination, departure_date, departure_time, price_cents, total_seats, available_seats, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.Origin, f.Destination, f.DepartureDate, f.DepartureTime, f.PriceCents, f.TotalSeats, f.AvailableSeats, ts, ts)
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(sampleFlights), nil
}
