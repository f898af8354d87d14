package booking

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Domenick1991/flightinventory/internal/clock"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/Domenick1991/flightinventory/internal/pricing"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"

	defaultMaxSeats = 10
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.CancellationReceipt, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.BookingDetails, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error)
	GetAvailability(ctx context.Context, flightID int64, travelDate time.Time, class domain.SeatClass) (int, error)
	GetInventory(ctx context.Context, flightID int64, travelDate time.Time) (*domain.Availability, error)
}

// Cache is the weakly consistent availability read cache. A nil Cache disables it.
type Cache interface {
	GetAvailability(ctx context.Context, key domain.InventoryKey) (*domain.Availability, error)
	SetAvailability(ctx context.Context, a domain.Availability) error
	InvalidateAvailability(ctx context.Context, key domain.InventoryKey) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Repositories struct {
	Flights    repository.FlightRepository
	Carriers   repository.CarrierRepository
	Users      repository.UserRepository
	Bookings   repository.BookingRepository
	Inventory  repository.InventoryRepository
	Transactor repository.Transactor
}

type BookingService struct {
	repos              Repositories
	clock              clock.Clock
	location           *time.Location
	discounts          *pricing.DiscountPolicy
	maxSeats           int
	validate           *validator.Validate
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             zerolog.Logger

	// invalidations counts availability invalidations issued by this service.
	// A cache fill that overlaps one is dropped again.
	invalidations atomic.Uint64
}

type CreateBookingInput struct {
	FlightID   int64            `json:"flight_id" validate:"gt=0"`
	UserID     int64            `json:"user_id" validate:"gt=0"`
	SeatClass  domain.SeatClass `json:"seat_class" validate:"seatclass"`
	TravelDate time.Time        `json:"travel_date" validate:"required"`
	SeatCount  int              `json:"seat_count" validate:"gte=1"`
}

type BookingServiceOption func(*BookingService)

func WithClock(c clock.Clock) BookingServiceOption {
	return func(s *BookingService) {
		s.clock = c
	}
}

// WithLocation sets the timezone whose calendar date counts as "today".
func WithLocation(loc *time.Location) BookingServiceOption {
	return func(s *BookingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithDiscountPolicy(p *pricing.DiscountPolicy) BookingServiceOption {
	return func(s *BookingService) {
		s.discounts = p
	}
}

func WithMaxSeatsPerBooking(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxSeats = n
		}
	}
}

func WithCache(c Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = c
	}
}

func WithProducer(p Producer, bookingTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
		s.bookingTopic = bookingTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithLogger(l zerolog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = l
	}
}

func NewBookingService(repos Repositories, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		repos:     repos,
		clock:     clock.NewSystem(),
		location:  time.UTC,
		discounts: pricing.NewDiscountPolicy(),
		maxSeats:  defaultMaxSeats,
		validate:  newValidator(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("seatclass", func(fl validator.FieldLevel) bool {
		class, ok := fl.Field().Interface().(domain.SeatClass)
		return ok && class.Valid()
	})
	return v
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	today := clock.Today(s.clock, s.location)
	if err := s.validateCreate(input, today); err != nil {
		return nil, err
	}
	travelDate := domain.DateOf(input.TravelDate)

	flight, err := s.repos.Flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	key := domain.NewInventoryKey(flight.ID, travelDate)
	if _, err := s.repos.Inventory.GetOrCreate(ctx, key, flight.Capacity); err != nil {
		return nil, fmt.Errorf("open seat inventory %s: %w", key, err)
	}
	if _, err := s.repos.Inventory.Reserve(ctx, key, input.SeatClass, input.SeatCount); err != nil {
		return nil, err
	}
	// Seats are held from here on; every failure below must give them back.

	discount := s.discounts.Compute(pricing.DiscountInput{
		Fare:       flight.Fare,
		Tier:       user.Tier,
		Today:      today,
		TravelDate: travelDate,
		SeatCount:  input.SeatCount,
	})

	now := s.clock.Now()
	booking := &domain.Booking{
		ID:             uuid.NewString(),
		FlightID:       flight.ID,
		UserID:         user.ID,
		SeatClass:      input.SeatClass,
		TravelDate:     travelDate,
		SeatCount:      input.SeatCount,
		GrossAmount:    pricing.Gross(flight.Fare, input.SeatCount),
		DiscountAmount: discount.Amount,
		DiscountReason: discount.Reason(),
		Status:         domain.BookingStatusBooked,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repos.Bookings.Create(ctx, booking); err != nil {
		return nil, s.compensateReservation(ctx, key, input.SeatClass, input.SeatCount, fmt.Errorf("persist booking: %w", err))
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Int64("flight_id", booking.FlightID).
		Str("travel_date", travelDate.Format(domain.DateLayout)).
		Stringer("seat_class", booking.SeatClass).
		Int("seat_count", booking.SeatCount).
		Str("net_amount", booking.NetAmount().StringFixed(2)).
		Msg("booking created")

	s.invalidate(ctx, key)
	s.publish(ctx, EventBookingCreated, booking, nil)
	return booking, nil
}

// compensateReservation releases seats taken by a create that could not be persisted.
// It runs detached from ctx so a cancelled request still gives the seats back.
func (s *BookingService) compensateReservation(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int, cause error) error {
	ctx = context.WithoutCancel(ctx)
	// A read may have cached the reservation while it was held.
	defer s.invalidate(ctx, key)

	if _, err := s.repos.Inventory.Release(ctx, key, class, n); err != nil {
		s.logger.Error().Err(err).Str("inventory", key.String()).Int("seat_count", n).Msg("compensating release failed")
		return errors.Join(cause, fmt.Errorf("release reserved seats: %w", err))
	}
	s.logger.Warn().Err(cause).Str("inventory", key.String()).Int("seat_count", n).Msg("booking not persisted, reservation released")
	return cause
}

func (s *BookingService) validateCreate(input CreateBookingInput, today time.Time) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if input.SeatCount > s.maxSeats {
		return fmt.Errorf("%w: seat count %d exceeds the limit of %d per booking", domain.ErrValidation, input.SeatCount, s.maxSeats)
	}
	if !domain.DateOf(input.TravelDate).After(today) {
		return fmt.Errorf("%w: travel date must be in the future", domain.ErrValidation)
	}
	return nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) (*domain.CancellationReceipt, error) {
	current, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !current.CanCancel() {
		return nil, fmt.Errorf("%w: booking %s is %s", domain.ErrInvalidState, current.ID, current.Status)
	}

	flight, err := s.repos.Flights.GetByID(ctx, current.FlightID)
	if err != nil {
		return nil, err
	}
	carrier, err := s.repos.Carriers.GetByID(ctx, flight.CarrierID)
	if err != nil {
		return nil, err
	}

	amount := current.NetAmount()
	refund := pricing.Refund(amount, carrier.RefundPercentage)
	key := domain.NewInventoryKey(current.FlightID, current.TravelDate)

	var cancelled *domain.Booking
	err = s.repos.Transactor.WithTx(ctx, func(ctx context.Context) error {
		// The conditional update loses to a concurrent cancel with ErrInvalidState,
		// so seats are released exactly once.
		b, err := s.repos.Bookings.MarkCancelled(ctx, current.ID)
		if err != nil {
			return err
		}
		if _, err := s.repos.Inventory.Release(ctx, key, b.SeatClass, b.SeatCount); err != nil {
			return fmt.Errorf("release seats: %w", err)
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", cancelled.ID).
		Int64("flight_id", cancelled.FlightID).
		Int("seat_count", cancelled.SeatCount).
		Str("refund_amount", refund.StringFixed(2)).
		Msg("booking cancelled")

	s.invalidate(ctx, key)
	s.publish(ctx, EventBookingCancelled, cancelled, &refund)

	return &domain.CancellationReceipt{
		BookingID:        cancelled.ID,
		FlightID:         cancelled.FlightID,
		UserID:           cancelled.UserID,
		SeatClass:        cancelled.SeatClass,
		TravelDate:       cancelled.TravelDate,
		SeatCount:        cancelled.SeatCount,
		BookingAmount:    amount,
		RefundAmount:     refund,
		RefundPercentage: carrier.RefundPercentage,
		Status:           cancelled.Status,
		Origin:           flight.Origin,
		Destination:      flight.Destination,
		CarrierName:      carrier.Name,
	}, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.BookingDetails, error) {
	b, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	details, err := s.details(ctx, []domain.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.repos.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, bookings)
}

func (s *BookingService) details(ctx context.Context, bookings []domain.Booking) ([]domain.BookingDetails, error) {
	flights := make(map[int64]*domain.Flight)
	carriers := make(map[int64]*domain.Carrier)

	result := make([]domain.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		flight, ok := flights[b.FlightID]
		if !ok {
			f, err := s.repos.Flights.GetByID(ctx, b.FlightID)
			if err != nil {
				return nil, err
			}
			flight, flights[b.FlightID] = f, f
		}
		carrier, ok := carriers[flight.CarrierID]
		if !ok {
			c, err := s.repos.Carriers.GetByID(ctx, flight.CarrierID)
			if err != nil {
				return nil, err
			}
			carrier, carriers[flight.CarrierID] = c, c
		}
		result = append(result, domain.BookingDetails{
			Booking:     b,
			NetAmount:   b.NetAmount(),
			Origin:      flight.Origin,
			Destination: flight.Destination,
			CarrierName: carrier.Name,
			Fare:        flight.Fare,
		})
	}
	return result, nil
}

// GetAvailability answers from the cache when possible, so it may trail a
// concurrent reservation; Reserve never relies on it.
func (s *BookingService) GetAvailability(ctx context.Context, flightID int64, travelDate time.Time, class domain.SeatClass) (int, error) {
	if !class.Valid() {
		return 0, fmt.Errorf("%w: unknown seat class %d", domain.ErrValidation, int(class))
	}
	a, err := s.GetInventory(ctx, flightID, travelDate)
	if err != nil {
		return 0, err
	}
	return a.Available.Of(class), nil
}

func (s *BookingService) GetInventory(ctx context.Context, flightID int64, travelDate time.Time) (*domain.Availability, error) {
	if travelDate.IsZero() {
		return nil, fmt.Errorf("%w: travel date is required", domain.ErrValidation)
	}
	key := domain.NewInventoryKey(flightID, travelDate)

	if s.cache != nil {
		cached, err := s.cache.GetAvailability(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("inventory", key.String()).Msg("availability cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	generation := s.invalidations.Load()

	flight, err := s.repos.Flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	var a domain.Availability
	inv, err := s.repos.Inventory.Get(ctx, key)
	switch {
	case errors.Is(err, domain.ErrInventoryNotFound):
		empty := domain.NewSeatInventory(key, flight.Capacity)
		a = empty.Availability()
	case err != nil:
		return nil, err
	default:
		a = inv.Availability()
	}

	if s.cache != nil {
		if err := s.cache.SetAvailability(ctx, a); err != nil {
			s.logger.Warn().Err(err).Str("inventory", key.String()).Msg("availability cache write failed")
		} else if s.invalidations.Load() != generation {
			// A reservation or release landed while this read was in flight, so
			// the value just written may predate it.
			if err := s.cache.InvalidateAvailability(ctx, key); err != nil {
				s.logger.Warn().Err(err).Str("inventory", key.String()).Msg("availability cache invalidation failed")
			}
		}
	}
	return &a, nil
}

func (s *BookingService) invalidate(ctx context.Context, key domain.InventoryKey) {
	if s.cache == nil {
		return
	}
	s.invalidations.Add(1)
	if err := s.cache.InvalidateAvailability(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("inventory", key.String()).Msg("availability cache invalidation failed")
	}
}

// publish is best effort: the booking is already committed when it runs.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, refund *decimal.Decimal) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.NewBookingEvent(eventType, booking, s.clock.Now())
	if refund != nil {
		event.RefundAmount = refund
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		s.logger.Warn().Err(err).Str("booking_id", booking.ID).Str("event", eventType).Msg("failed to publish booking event")
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			s.logger.Warn().Err(err).Str("booking_id", booking.ID).Str("event", eventType).Msg("failed to publish notification")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
