package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository owns the per (flight, travel date) seat ledgers.
// Reserve is the only path that increases a booked counter and is a single
// conditional update, so two callers can never both take the last seat.
type InventoryRepository interface {
	GetOrCreate(ctx context.Context, key domain.InventoryKey, capacity domain.SeatCounts) (*domain.SeatInventory, error)
	Get(ctx context.Context, key domain.InventoryKey) (*domain.SeatInventory, error)
	Reserve(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error)
	Release(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error)
}

type PGInventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) InventoryRepository {
	return &PGInventoryRepository{db: db}
}

const inventoryColumns = `flight_id, travel_date, capacity, booked, updated_at`

func (r *PGInventoryRepository) GetOrCreate(ctx context.Context, key domain.InventoryKey, capacity domain.SeatCounts) (*domain.SeatInventory, error) {
	q := conn(ctx, r.db)

	// ON CONFLICT keeps creation race free: concurrent first bookings for a date
	// converge on the same row.
	if _, err := q.Exec(ctx, `INSERT INTO seat_inventory (flight_id, travel_date, capacity, booked)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (flight_id, travel_date) DO NOTHING`,
		key.FlightID, key.TravelDate, fromSeatCounts(capacity), fromSeatCounts(domain.SeatCounts{})); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, fmt.Errorf("create seat inventory: %w", err)
	}

	return r.Get(ctx, key)
}

func (r *PGInventoryRepository) Get(ctx context.Context, key domain.InventoryKey) (*domain.SeatInventory, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT `+inventoryColumns+` FROM seat_inventory WHERE flight_id=$1 AND travel_date=$2`,
		key.FlightID, key.TravelDate)
	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *PGInventoryRepository) Reserve(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	if !class.Valid() || n <= 0 {
		return nil, fmt.Errorf("%w: reserve %d seats of %s", domain.ErrValidation, n, class)
	}

	// Check and increment happen in one statement under the row lock.
	row := conn(ctx, r.db).QueryRow(ctx, `UPDATE seat_inventory
		SET booked[$3] = booked[$3] + $4, updated_at = now()
		WHERE flight_id=$1 AND travel_date=$2 AND booked[$3] + $4 <= capacity[$3]
		RETURNING `+inventoryColumns,
		key.FlightID, key.TravelDate, arrayIndex(class), n)
	inv, err := scanInventory(row)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	current, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return nil, &domain.CapacityExceededError{Requested: n, Available: current.Available(class)}
}

func (r *PGInventoryRepository) Release(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	if !class.Valid() || n <= 0 {
		return nil, fmt.Errorf("%w: release %d seats of %s", domain.ErrValidation, n, class)
	}

	row := conn(ctx, r.db).QueryRow(ctx, `UPDATE seat_inventory
		SET booked[$3] = GREATEST(booked[$3] - $4, 0), updated_at = now()
		WHERE flight_id=$1 AND travel_date=$2
		RETURNING `+inventoryColumns,
		key.FlightID, key.TravelDate, arrayIndex(class), n)
	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("release seats: %w", err)
	}
	return inv, nil
}

func scanInventory(row pgx.Row) (*domain.SeatInventory, error) {
	var (
		inv              domain.SeatInventory
		capacity, booked []int32
	)
	if err := row.Scan(&inv.FlightID, &inv.TravelDate, &capacity, &booked, &inv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan seat inventory: %w", err)
	}

	var err error
	if inv.Capacity, err = toSeatCounts(capacity); err != nil {
		return nil, fmt.Errorf("seat inventory capacity: %w", err)
	}
	if inv.Booked, err = toSeatCounts(booked); err != nil {
		return nil, fmt.Errorf("seat inventory booked: %w", err)
	}
	inv.TravelDate = domain.DateOf(inv.TravelDate)
	return &inv, nil
}

// arrayIndex maps a seat class to its 1-based Postgres array subscript.
func arrayIndex(class domain.SeatClass) int {
	return int(class) + 1
}

func toSeatCounts(values []int32) (domain.SeatCounts, error) {
	var counts domain.SeatCounts
	if len(values) != domain.NumSeatClasses {
		return counts, fmt.Errorf("expected %d seat classes, got %d", domain.NumSeatClasses, len(values))
	}
	for i, v := range values {
		counts[i] = int(v)
	}
	return counts, nil
}

func fromSeatCounts(counts domain.SeatCounts) []int32 {
	values := make([]int32, len(counts))
	for i, v := range counts {
		values[i] = int32(v)
	}
	return values
}

var _ InventoryRepository = (*PGInventoryRepository)(nil)
