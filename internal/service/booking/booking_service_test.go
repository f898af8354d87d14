package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/flightinventory/internal/clock"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/Domenick1991/flightinventory/internal/repository"
	"github.com/Domenick1991/flightinventory/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Repository doubles.

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkCancelled(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) GetByID(ctx context.Context, id int64) (*domain.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetOrCreate(ctx context.Context, key domain.InventoryKey, capacity domain.SeatCounts) (*domain.SeatInventory, error) {
	args := m.Called(ctx, key, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatInventory), args.Error(1)
}

func (m *MockInventoryRepository) Get(ctx context.Context, key domain.InventoryKey) (*domain.SeatInventory, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatInventory), args.Error(1)
}

func (m *MockInventoryRepository) Reserve(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	args := m.Called(ctx, key, class, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatInventory), args.Error(1)
}

func (m *MockInventoryRepository) Release(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	args := m.Called(ctx, key, class, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatInventory), args.Error(1)
}

// MockCache stands in for the redis availability cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAvailability(ctx context.Context, key domain.InventoryKey) (*domain.Availability, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

func (m *MockCache) SetAvailability(ctx context.Context, a domain.Availability) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCache) InvalidateAvailability(ctx context.Context, key domain.InventoryKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type mocks struct {
	flights   *MockFlightRepository
	carriers  *MockCarrierRepository
	users     *MockUserRepository
	bookings  *MockBookingRepository
	inventory *MockInventoryRepository
}

var testNow = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

func newMockedService(opts ...BookingServiceOption) (*BookingService, mocks) {
	m := mocks{
		flights:   new(MockFlightRepository),
		carriers:  new(MockCarrierRepository),
		users:     new(MockUserRepository),
		bookings:  new(MockBookingRepository),
		inventory: new(MockInventoryRepository),
	}
	opts = append([]BookingServiceOption{WithClock(clock.NewFixed(testNow))}, opts...)
	svc := NewBookingService(Repositories{
		Flights:    m.flights,
		Carriers:   m.carriers,
		Users:      m.users,
		Bookings:   m.bookings,
		Inventory:  m.inventory,
		Transactor: memory.NewTransactor(),
	}, opts...)
	return svc, m
}

func testFlight() *domain.Flight {
	return &domain.Flight{
		ID:          1,
		CarrierID:   1,
		Origin:      "SVO",
		Destination: "LED",
		Fare:        decimal.RequireFromString("1000"),
		Capacity:    domain.SeatCounts{10, 4, 2},
	}
}

func day(offset int) time.Time {
	return time.Date(2030, 1, 1+offset, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking_ValidationFailsBeforeLookups(t *testing.T) {
	tests := []struct {
		name  string
		input CreateBookingInput
	}{
		{"zero seats", CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(10), SeatCount: 0}},
		{"too many seats", CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(10), SeatCount: 11}},
		{"unknown class", CreateBookingInput{FlightID: 1, UserID: 1, SeatClass: domain.SeatClass(7), TravelDate: day(10), SeatCount: 1}},
		{"missing flight", CreateBookingInput{UserID: 1, TravelDate: day(10), SeatCount: 1}},
		{"missing date", CreateBookingInput{FlightID: 1, UserID: 1, SeatCount: 1}},
		{"travel today", CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(0), SeatCount: 1}},
		{"travel in the past", CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(-3), SeatCount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMockedService()

			_, err := svc.CreateBooking(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
			m.flights.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			m.inventory.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateBooking_MaxSeatsIsConfigurable(t *testing.T) {
	svc, _ := newMockedService(WithMaxSeatsPerBooking(2))

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(10), SeatCount: 3})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBooking_FlightNotFound(t *testing.T) {
	svc, m := newMockedService()
	m.flights.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrFlightNotFound)

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{FlightID: 9, UserID: 1, TravelDate: day(10), SeatCount: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateBooking_CapacityExceededCreatesNothing(t *testing.T) {
	svc, m := newMockedService()
	flight := testFlight()
	key := domain.NewInventoryKey(1, day(3))
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(flight, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Tier: domain.CustomerTierRegular}, nil)
	m.inventory.On("GetOrCreate", mock.Anything, key, flight.Capacity).Return(&domain.SeatInventory{}, nil)
	m.inventory.On("Reserve", mock.Anything, key, domain.SeatClassEconomy, 2).
		Return(nil, &domain.CapacityExceededError{Requested: 2, Available: 1})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 2})

	var capErr *domain.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Requested)
	assert.Equal(t, 1, capErr.Available)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.inventory.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_PersistFailureReleasesSeats(t *testing.T) {
	svc, m := newMockedService()
	flight := testFlight()
	key := domain.NewInventoryKey(1, day(3))
	dbErr := errors.New("connection reset")
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(flight, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Tier: domain.CustomerTierRegular}, nil)
	m.inventory.On("GetOrCreate", mock.Anything, key, flight.Capacity).Return(&domain.SeatInventory{}, nil)
	m.inventory.On("Reserve", mock.Anything, key, domain.SeatClassBusiness, 2).Return(&domain.SeatInventory{}, nil)
	m.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(dbErr)
	m.inventory.On("Release", mock.Anything, key, domain.SeatClassBusiness, 2).Return(&domain.SeatInventory{}, nil)

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		FlightID: 1, UserID: 1, SeatClass: domain.SeatClassBusiness, TravelDate: day(3), SeatCount: 2,
	})

	assert.ErrorIs(t, err, dbErr)
	m.inventory.AssertCalled(t, "Release", mock.Anything, key, domain.SeatClassBusiness, 2)
}

func TestCreateBooking_CompensationRunsOnCancelledContext(t *testing.T) {
	svc, m := newMockedService()
	flight := testFlight()
	key := domain.NewInventoryKey(1, day(3))
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(flight, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.inventory.On("GetOrCreate", mock.Anything, key, flight.Capacity).Return(&domain.SeatInventory{}, nil)
	m.inventory.On("Reserve", mock.Anything, key, domain.SeatClassEconomy, 1).Return(&domain.SeatInventory{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	m.bookings.On("Create", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(context.Canceled)
	m.inventory.On("Release", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), key, domain.SeatClassEconomy, 1).
		Return(&domain.SeatInventory{}, nil)

	_, err := svc.CreateBooking(ctx, CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 1})

	assert.ErrorIs(t, err, context.Canceled)
	m.inventory.AssertExpectations(t)
}

func TestCreateBooking_CompensationFailureIsReported(t *testing.T) {
	svc, m := newMockedService()
	flight := testFlight()
	key := domain.NewInventoryKey(1, day(3))
	createErr := errors.New("insert failed")
	releaseErr := errors.New("release failed")
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(flight, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	m.inventory.On("GetOrCreate", mock.Anything, key, flight.Capacity).Return(&domain.SeatInventory{}, nil)
	m.inventory.On("Reserve", mock.Anything, key, domain.SeatClassEconomy, 1).Return(&domain.SeatInventory{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(createErr)
	m.inventory.On("Release", mock.Anything, key, domain.SeatClassEconomy, 1).Return(nil, releaseErr)

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 1})

	assert.ErrorIs(t, err, createErr)
	assert.ErrorIs(t, err, releaseErr)
}

func TestCreateBooking_PublishesAndInvalidates(t *testing.T) {
	cache := new(MockCache)
	producer := new(MockProducer)
	svc, m := newMockedService(WithCache(cache), WithProducer(producer, "bookings", "notifications"))
	flight := testFlight()
	key := domain.NewInventoryKey(1, day(35))
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(flight, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Tier: domain.CustomerTierRegular}, nil)
	m.inventory.On("GetOrCreate", mock.Anything, key, flight.Capacity).Return(&domain.SeatInventory{}, nil)
	m.inventory.On("Reserve", mock.Anything, key, domain.SeatClassEconomy, 2).Return(&domain.SeatInventory{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateAvailability", mock.Anything, key).Return(errors.New("redis down"))
	producer.On("Publish", mock.Anything, "bookings", mock.Anything, mock.AnythingOfType("kafka.BookingEvent")).Return(nil)
	producer.On("Publish", mock.Anything, "notifications", mock.Anything, mock.AnythingOfType("kafka.BookingEvent")).Return(errors.New("broker down"))

	b, err := svc.CreateBooking(context.Background(), CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(35), SeatCount: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, b.Status)
	assert.True(t, decimal.RequireFromString("1700").Equal(b.NetAmount()))
	cache.AssertExpectations(t)
	producer.AssertExpectations(t)

	event := producer.Calls[0].Arguments.Get(3).(kafka.BookingEvent)
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.Equal(t, b.ID, event.BookingID)
}

func TestCancelBooking_RejectsCancelledBooking(t *testing.T) {
	svc, m := newMockedService()
	m.bookings.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{ID: "b-1", Status: domain.BookingStatusCancelled}, nil)

	_, err := svc.CancelBooking(context.Background(), "b-1")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	m.bookings.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	m.inventory.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, m := newMockedService()
	m.bookings.On("GetByID", mock.Anything, "nope").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.CancelBooking(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelBooking_CarrierNotFound(t *testing.T) {
	svc, m := newMockedService()
	booking := &domain.Booking{ID: "b-1", FlightID: 1, TravelDate: day(3), SeatCount: 1, Status: domain.BookingStatusBooked}
	m.bookings.On("GetByID", mock.Anything, "b-1").Return(booking, nil)
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(testFlight(), nil)
	m.carriers.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrCarrierNotFound)

	_, err := svc.CancelBooking(context.Background(), "b-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.bookings.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
}

func TestCancelBooking_ReleaseFailureFailsCancel(t *testing.T) {
	svc, m := newMockedService()
	booking := &domain.Booking{ID: "b-1", FlightID: 1, TravelDate: day(3), SeatCount: 2, Status: domain.BookingStatusBooked}
	cancelled := *booking
	cancelled.Status = domain.BookingStatusCancelled
	key := domain.NewInventoryKey(1, day(3))
	m.bookings.On("GetByID", mock.Anything, "b-1").Return(booking, nil)
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(testFlight(), nil)
	m.carriers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Carrier{ID: 1, RefundPercentage: decimal.NewFromInt(80)}, nil)
	m.bookings.On("MarkCancelled", mock.Anything, "b-1").Return(&cancelled, nil)
	m.inventory.On("Release", mock.Anything, key, domain.SeatClassEconomy, 2).Return(nil, errors.New("deadlock detected"))

	_, err := svc.CancelBooking(context.Background(), "b-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "release seats")
}

func TestGetInventory_UsesCache(t *testing.T) {
	cache := new(MockCache)
	svc, m := newMockedService(WithCache(cache))
	key := domain.NewInventoryKey(1, day(5))
	cached := &domain.Availability{FlightID: 1, TravelDate: day(5), Available: domain.SeatCounts{3, 2, 1}}
	cache.On("GetAvailability", mock.Anything, key).Return(cached, nil)

	n, err := svc.GetAvailability(context.Background(), 1, day(5), domain.SeatClassBusiness)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	m.flights.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetInventory_MissFillsCache(t *testing.T) {
	cache := new(MockCache)
	svc, m := newMockedService(WithCache(cache))
	key := domain.NewInventoryKey(1, day(5))
	inv := domain.NewSeatInventory(key, domain.SeatCounts{10, 4, 2})
	inv.Booked = domain.SeatCounts{4, 0, 2}
	cache.On("GetAvailability", mock.Anything, key).Return(nil, nil)
	cache.On("SetAvailability", mock.Anything, inv.Availability()).Return(nil)
	m.flights.On("GetByID", mock.Anything, int64(1)).Return(testFlight(), nil)
	m.inventory.On("Get", mock.Anything, key).Return(&inv, nil)

	a, err := svc.GetInventory(context.Background(), 1, day(5))

	require.NoError(t, err)
	assert.Equal(t, domain.SeatCounts{6, 4, 0}, a.Available)
	cache.AssertExpectations(t)
}

func TestGetAvailability_InvalidClass(t *testing.T) {
	svc, _ := newMockedService()

	_, err := svc.GetAvailability(context.Background(), 1, day(5), domain.SeatClass(-1))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// mapCache is an in-process availability cache with the same miss semantics as redis.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]domain.Availability
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]domain.Availability)}
}

func (c *mapCache) GetAvailability(_ context.Context, key domain.InventoryKey) (*domain.Availability, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.entries[key.String()]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (c *mapCache) SetAvailability(_ context.Context, a domain.Availability) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[domain.NewInventoryKey(a.FlightID, a.TravelDate).String()] = a
	return nil
}

func (c *mapCache) InvalidateAvailability(_ context.Context, key domain.InventoryKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key.String())
	return nil
}

// hookedBookings runs onCreate before failing every insert.
type hookedBookings struct {
	repository.BookingRepository
	onCreate func(ctx context.Context)
}

func (b *hookedBookings) Create(ctx context.Context, _ *domain.Booking) error {
	b.onCreate(ctx)
	return errors.New("insert failed")
}

// hookedInventory runs onGet once, after the row was read and before it is returned.
type hookedInventory struct {
	repository.InventoryRepository
	onGet func()
}

func (i *hookedInventory) Get(ctx context.Context, key domain.InventoryKey) (*domain.SeatInventory, error) {
	inv, err := i.InventoryRepository.Get(ctx, key)
	if hook := i.onGet; hook != nil {
		i.onGet = nil
		hook()
	}
	return inv, err
}

func TestCreateBooking_FailedPersistDropsCachedReservation(t *testing.T) {
	cache := newMapCache()
	svc, store := newMemoryService(t, WithCache(cache))
	ctx := context.Background()

	var seenDuringCreate int
	svc.repos.Bookings = &hookedBookings{
		BookingRepository: store.Bookings,
		onCreate: func(ctx context.Context) {
			n, err := svc.GetAvailability(ctx, 1, day(3), domain.SeatClassEconomy)
			require.NoError(t, err)
			seenDuringCreate = n
		},
	}

	_, err := svc.CreateBooking(ctx, CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 3})
	require.Error(t, err)
	assert.Equal(t, 7, seenDuringCreate)
	assert.Equal(t, 0, booked(t, store, 1, 3, domain.SeatClassEconomy))

	n, err := svc.GetAvailability(ctx, 1, day(3), domain.SeatClassEconomy)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestGetInventory_FillOverlappingReservationIsDropped(t *testing.T) {
	cache := newMapCache()
	svc, store := newMemoryService(t, WithCache(cache))
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 1})
	require.NoError(t, err)

	svc.repos.Inventory = &hookedInventory{
		InventoryRepository: store.Inventory,
		onGet: func() {
			_, err := svc.CreateBooking(ctx, CreateBookingInput{FlightID: 1, UserID: 1, TravelDate: day(3), SeatCount: 3})
			require.NoError(t, err)
		},
	}

	// The read saw the row before the second booking landed.
	stale, err := svc.GetInventory(ctx, 1, day(3))
	require.NoError(t, err)
	assert.Equal(t, 9, stale.Available.Of(domain.SeatClassEconomy))

	n, err := svc.GetAvailability(ctx, 1, day(3), domain.SeatClassEconomy)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 4, booked(t, store, 1, 3, domain.SeatClassEconomy))
}
