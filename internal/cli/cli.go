// Package cli implements the terminal front end: scriptable subcommands for
// one-shot use plus an interactive menu when the binary runs with no
// arguments.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/booking"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/flights"
)

type App struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	in       *bufio.Reader
	out      io.Writer
}

func New(flightService flights.FlightUseCase, bookingService booking.BookingUseCase, in io.Reader, out io.Writer) *App {
	return &App{
		flights:  flightService,
		bookings: bookingService,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run dispatches a subcommand, or starts the interactive menu when args is
// empty. The return value is the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return a.runMenu(ctx)
	}

	cmd := strings.ToLower(args[0])
	rest := args[1:]
	switch cmd {
	case "search":
		return a.runSearch(ctx, rest)
	case "book":
		return a.runBook(ctx, rest)
	case "booking":
		return a.runBooking(ctx, rest)
	case "cancel":
		return a.runCancel(ctx, rest)
	case "add-flight":
		return a.runAddFlight(ctx, rest)
	case "adjust-seats":
		return a.runAdjustSeats(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.out, "unknown command: %s\n\n", cmd)
		a.usage()
		return 2
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `airline - airplane ticket management

Usage:
  airline                                                       interactive menu
  airline search [-from CITY] [-to CITY] [-date YYYY-MM-DD]     find flights
  airline book -flight ID -passenger NAME -seats N              book seats
  airline booking -ref REFERENCE                                show a booking
  airline cancel -ref REFERENCE [-y]                            cancel a booking
  airline add-flight -from CITY -to CITY -date YYYY-MM-DD -time HH:MM -price AMOUNT -seats N
  airline adjust-seats -flight ID -delta N                      correct seat availability
`)
}

func (a *App) runSearch(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(a.out)
	from := fs.String("from", "", "origin city")
	to := fs.String("to", "", "destination city")
	date := fs.String("date", "", "departure date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	results, err := a.flights.Search(ctx, flights.SearchInput{Origin: *from, Destination: *to, Date: *date})
	if err != nil {
		a.fail(err)
		return 1
	}
	if len(results) == 0 {
		a.info("No flights found matching your criteria.")
		return 0
	}
	a.renderFlights(results)
	return 0
}

func (a *App) runBook(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(a.out)
	flightID := fs.Int64("flight", 0, "flight id")
	passenger := fs.String("passenger", "", "passenger name")
	seats := fs.Int("seats", 1, "number of seats")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	b, err := a.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		FlightID:      *flightID,
		PassengerName: *passenger,
		SeatCount:     *seats,
	})
	if err != nil {
		a.fail(err)
		return 1
	}

	a.success("Booked %d seat(s) on flight %d for %s.", b.SeatCount, b.FlightID, b.PassengerName)
	a.info("Total: %s", formatPrice(b.TotalCents))
	a.info("Reference: %s", b.Reference)
	return 0
}

func (a *App) runBooking(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("booking", flag.ContinueOnError)
	fs.SetOutput(a.out)
	ref := fs.String("ref", "", "booking reference")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	b, err := a.bookings.GetBooking(ctx, strings.TrimSpace(*ref))
	if err != nil {
		a.fail(err)
		return 1
	}
	f, err := a.flights.GetByID(ctx, b.FlightID)
	if err != nil {
		a.fail(err)
		return 1
	}
	a.renderBookingDetail(b, f)
	return 0
}

func (a *App) runCancel(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	fs.SetOutput(a.out)
	ref := fs.String("ref", "", "booking reference")
	yes := fs.Bool("y", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	reference := strings.TrimSpace(*ref)
	if !*yes && !a.confirm(fmt.Sprintf("Cancel booking %s?", reference)) {
		a.info("Cancellation aborted.")
		return 0
	}

	b, err := a.bookings.CancelBooking(ctx, reference)
	if err != nil {
		a.fail(err)
		return 1
	}
	a.success("Booking cancelled. %d seat(s) returned to flight %d.", b.SeatCount, b.FlightID)
	return 0
}

func (a *App) runAddFlight(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("add-flight", flag.ContinueOnError)
	fs.SetOutput(a.out)
	from := fs.String("from", "", "origin city")
	to := fs.String("to", "", "destination city")
	date := fs.String("date", "", "departure date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "", "departure time (HH:MM)")
	price := fs.String("price", "", "price per seat, e.g. 199.99")
	seats := fs.Int("seats", 0, "total seats")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	priceCents, err := parsePrice(*price)
	if err != nil {
		a.fail(err)
		return 1
	}

	f, err := a.flights.AddFlight(ctx, flights.AddFlightInput{
		Origin:        *from,
		Destination:   *to,
		DepartureDate: *date,
		DepartureTime: *timeOfDay,
		PriceCents:    priceCents,
		TotalSeats:    *seats,
	})
	if err != nil {
		a.fail(err)
		return 1
	}

	a.success("Flight %d added: %s to %s on %s at %s, %d seats at %s.",
		f.ID, f.Origin, f.Destination, f.DepartureDate, f.DepartureTime, f.TotalSeats, formatPrice(f.PriceCents))
	return 0
}

func (a *App) runAdjustSeats(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("adjust-seats", flag.ContinueOnError)
	fs.SetOutput(a.out)
	flightID := fs.Int64("flight", 0, "flight id")
	delta := fs.Int("delta", 0, "seats to add (positive) or remove (negative)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := a.flights.AdjustSeats(ctx, *flightID, *delta)
	if err != nil {
		a.fail(err)
		return 1
	}
	a.success("Flight %d now has %d of %d seats available.", f.ID, f.AvailableSeats, f.TotalSeats)
	return 0
}

// parsePrice converts a price like "199.99" or "$750" to cents.
func parsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrInvalidPrice)
	}
	return int64(math.Round(v * 100)), nil
}
