// Package bootstrap assembles the terminal front end from its parts.
package bootstrap

import (
	"context"
	"io"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/config"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/cli"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/booking"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/flights"
	"github.com/fatih/color"
)

// Run builds the CLI on the given streams and executes it. The return value
// is the process exit code.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, in io.Reader, out io.Writer, args []string) int {
	if !cfg.UI.Color {
		color.NoColor = true
	}

	app := cli.New(flightSvc, bookingSvc, in, out)
	return app.Run(ctx, args)
}
