package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"github.com/Domenick1991/flightinventory/internal/repository/memory"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/Domenick1991/flightinventory/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// OpenStorage builds the repositories for the configured driver. The returned
// close func releases the connection pool, if any.
func OpenStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (booking.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		if cfg.Storage.FixturesPath != "" {
			if err := store.LoadFixtures(cfg.Storage.FixturesPath); err != nil {
				return booking.Repositories{}, nil, err
			}
			logger.Info().Str("path", cfg.Storage.FixturesPath).Msg("fixtures loaded")
		}
		return booking.Repositories{
			Flights:    store.Flights,
			Carriers:   store.Carriers,
			Users:      store.Users,
			Bookings:   store.Bookings,
			Inventory:  store.Inventory,
			Transactor: store.Transactor,
		}, func() {}, nil

	case config.StorageDriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return booking.Repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return booking.Repositories{}, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if cfg.Database.Migrate {
			if err := migrations.Apply(ctx, pool); err != nil {
				pool.Close()
				return booking.Repositories{}, nil, err
			}
			logger.Info().Msg("migrations applied")
		}
		return booking.Repositories{
			Flights:    repository.NewFlightRepository(pool),
			Carriers:   repository.NewCarrierRepository(pool),
			Users:      repository.NewUserRepository(pool),
			Bookings:   repository.NewBookingRepository(pool),
			Inventory:  repository.NewInventoryRepository(pool),
			Transactor: repository.NewTransactor(pool),
		}, pool.Close, nil

	default:
		return booking.Repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
