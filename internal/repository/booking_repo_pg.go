package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	// MarkCancelled moves a BOOKED booking to CANCELLED. It fails with
	// ErrInvalidState when the booking is in any other status.
	MarkCancelled(ctx context.Context, id string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, flight_id, user_id, seat_class, travel_date, seat_count, gross_amount, discount_amount, discount_reason, status, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	row := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO bookings
		(id, flight_id, user_id, seat_class, travel_date, seat_count, gross_amount, discount_amount, discount_reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		booking.ID, booking.FlightID, booking.UserID, booking.SeatClass.String(), booking.TravelDate,
		booking.SeatCount, booking.GrossAmount, booking.DiscountAmount, booking.DiscountReason, booking.Status)
	if err := row.Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("booking %s already exists: %w", booking.ID, err)
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) MarkCancelled(ctx context.Context, id string) (*domain.Booking, error) {
	q := conn(ctx, r.db)
	row := q.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now()
		WHERE id=$2 AND status=$3
		RETURNING `+bookingColumns,
		domain.BookingStatusCancelled, id, domain.BookingStatusBooked)
	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: booking %s is %s", domain.ErrInvalidState, id, current.Status)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b         domain.Booking
		seatClass string
	)
	if err := row.Scan(&b.ID, &b.FlightID, &b.UserID, &seatClass, &b.TravelDate, &b.SeatCount,
		&b.GrossAmount, &b.DiscountAmount, &b.DiscountReason, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	class, err := domain.ParseSeatClass(seatClass)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", b.ID, err)
	}
	b.SeatClass = class
	b.TravelDate = domain.DateOf(b.TravelDate)
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
