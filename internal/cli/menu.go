package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/booking"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/flights"
)

// runMenu drives the interactive session. Each menu item walks the user
// through one form, then returns to the menu.
func (a *App) runMenu(ctx context.Context) int {
	a.info("Airline Ticket Reservation System")
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) Search flights")
		fmt.Fprintln(a.out, "2) Book a flight")
		fmt.Fprintln(a.out, "3) View a booking")
		fmt.Fprintln(a.out, "4) Cancel a booking")
		fmt.Fprintln(a.out, "5) Add a flight (admin)")
		fmt.Fprintln(a.out, "6) Quit")

		choice, err := a.prompt("Choose an option: ")
		if err != nil {
			return 0
		}

		switch choice {
		case "1":
			a.menuSearch(ctx)
		case "2":
			a.menuBook(ctx)
		case "3":
			a.menuView(ctx)
		case "4":
			a.menuCancel(ctx)
		case "5":
			a.menuAddFlight(ctx)
		case "6", "q", "quit":
			a.info("Goodbye.")
			return 0
		default:
			a.info("Unknown option %q.", choice)
		}
	}
}

// prompt prints the label and reads one trimmed line. It returns an error
// only when the input is exhausted.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptInt(label string) (int, error) {
	s, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidInput, s)
	}
	return v, nil
}

func (a *App) promptInt64(label string) (int64, error) {
	s, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidInput, s)
	}
	return v, nil
}

func (a *App) confirm(question string) bool {
	answer, err := a.prompt(question + " [y/N]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (a *App) menuSearch(ctx context.Context) {
	from, err := a.prompt("Origin (blank for any): ")
	if err != nil {
		return
	}
	to, err := a.prompt("Destination (blank for any): ")
	if err != nil {
		return
	}
	date, err := a.prompt("Date YYYY-MM-DD (blank for any): ")
	if err != nil {
		return
	}

	results, err := a.flights.Search(ctx, flights.SearchInput{Origin: from, Destination: to, Date: date})
	if err != nil {
		a.fail(err)
		return
	}
	if len(results) == 0 {
		a.info("No flights found matching your criteria.")
		return
	}
	a.renderFlights(results)
}

func (a *App) menuBook(ctx context.Context) {
	flightID, err := a.promptInt64("Flight ID: ")
	if err != nil {
		a.failPrompt(err)
		return
	}
	passenger, err := a.prompt("Passenger name: ")
	if err != nil {
		return
	}
	seats, err := a.promptInt("Seats: ")
	if err != nil {
		a.failPrompt(err)
		return
	}

	b, err := a.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		FlightID:      flightID,
		PassengerName: passenger,
		SeatCount:     seats,
	})
	if err != nil {
		a.fail(err)
		return
	}

	a.success("Booked %d seat(s) on flight %d for %s.", b.SeatCount, b.FlightID, b.PassengerName)
	a.info("Total: %s", formatPrice(b.TotalCents))
	a.info("Reference: %s", b.Reference)
}

func (a *App) menuView(ctx context.Context) {
	reference, err := a.prompt("Booking reference: ")
	if err != nil {
		return
	}

	b, err := a.bookings.GetBooking(ctx, reference)
	if err != nil {
		a.fail(err)
		return
	}
	f, err := a.flights.GetByID(ctx, b.FlightID)
	if err != nil {
		a.fail(err)
		return
	}
	a.renderBookingDetail(b, f)
}

func (a *App) menuCancel(ctx context.Context) {
	reference, err := a.prompt("Booking reference: ")
	if err != nil {
		return
	}
	if !a.confirm("Cancel this booking?") {
		a.info("Cancellation aborted.")
		return
	}

	b, err := a.bookings.CancelBooking(ctx, reference)
	if err != nil {
		a.fail(err)
		return
	}
	a.success("Booking cancelled. %d seat(s) returned to flight %d.", b.SeatCount, b.FlightID)
}

func (a *App) menuAddFlight(ctx context.Context) {
	from, err := a.prompt("Origin: ")
	if err != nil {
		return
	}
	to, err := a.prompt("Destination: ")
	if err != nil {
		return
	}
	date, err := a.prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return
	}
	timeOfDay, err := a.prompt("Time (HH:MM): ")
	if err != nil {
		return
	}
	price, err := a.prompt("Price per seat: ")
	if err != nil {
		return
	}
	seats, err := a.promptInt("Total seats: ")
	if err != nil {
		a.failPrompt(err)
		return
	}

	priceCents, err := parsePrice(price)
	if err != nil {
		a.fail(err)
		return
	}

	f, err := a.flights.AddFlight(ctx, flights.AddFlightInput{
		Origin:        from,
		Destination:   to,
		DepartureDate: date,
		DepartureTime: timeOfDay,
		PriceCents:    priceCents,
		TotalSeats:    seats,
	})
	if err != nil {
		a.fail(err)
		return
	}

	a.success("Flight %d added: %s to %s on %s at %s, %d seats at %s.",
		f.ID, f.Origin, f.Destination, f.DepartureDate, f.DepartureTime, f.TotalSeats, formatPrice(f.PriceCents))
}

// failPrompt reports a bad interactive entry unless the input simply ran out.
func (a *App) failPrompt(err error) {
	if errors.Is(err, io.EOF) {
		return
	}
	a.fail(err)
}
