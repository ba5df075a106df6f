package repository

import (
	"context"
	"testing"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFlight(t *testing.T, repo FlightRepository, origin, destination string, seats int) *domain.Flight {
	t.Helper()
	flight, err := domain.NewFlight(origin, destination, "2026-09-01", "08:00", 19900, seats)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), flight))
	return flight
}

func TestFlightCreateAndGetByID(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	flight, err := domain.NewFlight("New York", "London", "2026-07-01", "08:00", 75000, 150)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, flight))
	assert.Positive(t, flight.ID)
	assert.False(t, flight.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, "New York", got.Origin)
	assert.Equal(t, "London", got.Destination)
	assert.Equal(t, "2026-07-01", got.DepartureDate)
	assert.Equal(t, "08:00", got.DepartureTime)
	assert.Equal(t, int64(75000), got.PriceCents)
	assert.Equal(t, 150, got.TotalSeats)
	assert.Equal(t, 150, got.AvailableSeats)
}

func TestFlightGetByIDNotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestFlightSearchFilters(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	_, err := store.SeedSampleFlights(ctx)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter FlightFilter
		want   int
	}{
		{name: "no filter returns all", filter: FlightFilter{}, want: 5},
		{name: "origin only", filter: FlightFilter{Origin: "New York"}, want: 2},
		{name: "origin and destination", filter: FlightFilter{Origin: "New York", Destination: "London"}, want: 1},
		{name: "date only", filter: FlightFilter{Date: "2026-07-02"}, want: 1},
		{name: "no match", filter: FlightFilter{Origin: "Madrid"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flights, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, flights, tt.want)
		})
	}
}

func TestFlightSearchExactMatchOnly(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	createTestFlight(t, repo, "New York", "London", 10)

	flights, err := repo.Search(ctx, FlightFilter{Origin: "new york"})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightSearchOrder(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	later, err := domain.NewFlight("Oslo", "Bergen", "2026-09-02", "09:00", 9900, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, later))

	sameDayLater, err := domain.NewFlight("Oslo", "Bergen", "2026-09-01", "17:30", 9900, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sameDayLater))

	earliest, err := domain.NewFlight("Oslo", "Bergen", "2026-09-01", "06:15", 9900, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, earliest))

	flights, err := repo.Search(ctx, FlightFilter{Origin: "Oslo"})
	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, earliest.ID, flights[0].ID)
	assert.Equal(t, sameDayLater.ID, flights[1].ID)
	assert.Equal(t, later.ID, flights[2].ID)
}

func TestFlightSearchOrderWithUnpaddedHour(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	midMorning, err := domain.NewFlight("Oslo", "Bergen", "2026-09-01", "10:30", 9900, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, midMorning))

	// "8:00" passes validation; it must still sort before "10:30".
	early, err := domain.NewFlight("Oslo", "Bergen", "2026-09-01", "8:00", 9900, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, early))

	flights, err := repo.Search(ctx, FlightFilter{Origin: "Oslo"})
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, early.ID, flights[0].ID)
	assert.Equal(t, "08:00", flights[0].DepartureTime)
	assert.Equal(t, midMorning.ID, flights[1].ID)
}

func TestFlightSearchEmptyStoreReturnsEmptySlice(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)

	flights, err := repo.Search(context.Background(), FlightFilter{})
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestFlightAdjustSeats(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	flight := createTestFlight(t, repo, "Oslo", "Bergen", 10)

	got, err := repo.AdjustSeats(ctx, flight.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, got.AvailableSeats)

	got, err = repo.AdjustSeats(ctx, flight.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, got.AvailableSeats)
}

func TestFlightAdjustSeatsBelowZero(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	flight := createTestFlight(t, repo, "Oslo", "Bergen", 10)

	_, err := repo.AdjustSeats(ctx, flight.ID, -11)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSeats)

	got, err := repo.GetByID(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.AvailableSeats)
}

func TestFlightAdjustSeatsAboveTotal(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)
	ctx := context.Background()

	flight := createTestFlight(t, repo, "Oslo", "Bergen", 10)

	_, err := repo.AdjustSeats(ctx, flight.ID, 1)
	assert.ErrorIs(t, err, domain.ErrSeatsExceedTotal)
}

func TestFlightAdjustSeatsUnknownFlight(t *testing.T) {
	store := newTestStore(t)
	repo := NewFlightRepository(store)

	_, err := repo.AdjustSeats(context.Background(), 42, -1)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
