package main

import (
	"context"
	"log"
	"os"

	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/config"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/bootstrap"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/repository"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/booking"
	"github.com/Suyashtiwari-7/Airplane-ticket-management-system/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	store, err := repository.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if cfg.Database.SeedSample {
		if _, err := store.SeedSampleFlights(ctx); err != nil {
			log.Fatalf("seed sample flights: %v", err)
		}
	}

	flightRepo := repository.NewFlightRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	flightService := flights.NewFlightService(flightRepo)
	bookingService := booking.NewBookingService(bookingRepo)

	code := bootstrap.Run(ctx, cfg, flightService, bookingService, os.Stdin, os.Stdout, os.Args[1:])
	if err := store.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
	os.Exit(code)
}
