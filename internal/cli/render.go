package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/domain"
	"github.com/fatih/color"
)

var (
	successColor   = color.New(color.FgGreen)
	errorColor     = color.New(color.FgRed)
	cancelledColor = color.New(color.FgRed)
)

func (a *App) success(format string, args ...any) {
	successColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) info(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) fail(err error) {
	errorColor.Fprintf(a.out, "Error: %s\n", userMessage(err))
}

// userMessage translates domain errors into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, domain.ErrFlightNotFound):
		return "flight not found"
	case errors.Is(err, domain.ErrBookingNotFound):
		return "booking not found"
	case errors.Is(err, domain.ErrNotEnoughSeats):
		return "not enough seats available on this flight"
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return "this booking has already been cancelled"
	case errors.Is(err, domain.ErrSeatsExceedTotal):
		return "seat count would exceed the flight's capacity"
	}
	return err.Error()
}

func (a *App) renderFlights(list []domain.Flight) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFROM\tTO\tDATE\tTIME\tPRICE\tSEATS")
	for _, f := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			f.ID, f.Origin, f.Destination, f.DepartureDate, f.DepartureTime,
			formatPrice(f.PriceCents), f.AvailableSeats, f.TotalSeats)
	}
	w.Flush()
}

func (a *App) renderBookingDetail(b *domain.Booking, f *domain.Flight) {
	fmt.Fprintf(a.out, "Reference:  %s\n", b.Reference)
	fmt.Fprintf(a.out, "Status:     %s\n", renderStatus(b.Status))
	fmt.Fprintf(a.out, "Flight:     %d, %s to %s on %s at %s\n",
		f.ID, f.Origin, f.Destination, f.DepartureDate, f.DepartureTime)
	fmt.Fprintf(a.out, "Passenger:  %s\n", b.PassengerName)
	fmt.Fprintf(a.out, "Seats:      %d\n", b.SeatCount)
	fmt.Fprintf(a.out, "Price/seat: %s\n", formatPrice(f.PriceCents))
	fmt.Fprintf(a.out, "Total:      %s\n", formatPrice(b.TotalCents))
}

func renderStatus(s domain.BookingStatus) string {
	switch s {
	case domain.BookingStatusConfirmed:
		return successColor.Sprint(string(s))
	case domain.BookingStatusCancelled:
		return cancelledColor.Sprint(string(s))
	}
	return string(s)
}

func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
