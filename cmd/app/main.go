package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/bootstrap"
	"github.com/Domenick1991/flightinventory/internal/cache"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/Domenick1991/flightinventory/internal/logger"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/Domenick1991/flightinventory/internal/service/flights"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	lg := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, lg)
	stop()
	if err != nil {
		lg.Error().Err(err).Msg("app stopped")
		os.Exit(1)
	}
	lg.Info().Msg("shutdown complete")
}

// run closes everything it opens before returning.
func run(ctx context.Context, cfg *config.Config, lg zerolog.Logger) error {
	repos, closeStorage, err := bootstrap.OpenStorage(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer closeStorage()

	bookingOpts := []booking.BookingServiceOption{
		booking.WithLocation(cfg.Booking.Location()),
		booking.WithMaxSeatsPerBooking(cfg.Booking.MaxSeatsPerBooking),
		booking.WithLogger(lg.With().Str("component", "booking").Logger()),
	}

	var flightCache flights.FlightCache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis,
			time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second,
			time.Duration(cfg.Booking.AvailabilityCacheTTL)*time.Second,
		)
		defer redisCache.Close()
		flightCache = redisCache
		bookingOpts = append(bookingOpts, booking.WithCache(redisCache))
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			lg.Warn().Err(err).Msg("kafka unreachable, booking events are best effort until it recovers")
		}
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic))
	}

	flightService := flights.NewFlightService(repos.Flights, flightCache, lg.With().Str("component", "flights").Logger())
	bookingService := booking.NewBookingService(repos, bookingOpts...)

	return bootstrap.Run(ctx, cfg, lg, flightService, bookingService)
}
