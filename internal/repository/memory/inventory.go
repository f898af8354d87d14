package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/repository"
)

// Inventory keeps one ledger per (flight, travel date), each guarded by its own
// mutex so bookings for different dates never contend.
type Inventory struct {
	mu   sync.Mutex
	rows map[string]*inventoryRow
	now  func() time.Time
}

type inventoryRow struct {
	mu  sync.Mutex
	inv domain.SeatInventory
}

func NewInventory() *Inventory {
	return &Inventory{
		rows: make(map[string]*inventoryRow),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Inventory) row(key domain.InventoryKey) (*inventoryRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[key.String()]
	return r, ok
}

func (s *Inventory) GetOrCreate(_ context.Context, key domain.InventoryKey, capacity domain.SeatCounts) (*domain.SeatInventory, error) {
	key = domain.NewInventoryKey(key.FlightID, key.TravelDate)

	s.mu.Lock()
	r, ok := s.rows[key.String()]
	if !ok {
		r = &inventoryRow{inv: domain.NewSeatInventory(key, capacity)}
		r.inv.UpdatedAt = s.now()
		s.rows[key.String()] = r
	}
	s.mu.Unlock()

	return r.snapshot(), nil
}

func (s *Inventory) Get(_ context.Context, key domain.InventoryKey) (*domain.SeatInventory, error) {
	r, ok := s.row(key)
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	return r.snapshot(), nil
}

func (s *Inventory) Reserve(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	r, ok := s.row(key)
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}

	r.mu.Lock()
	if err := r.inv.Reserve(class, n); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.inv.UpdatedAt = s.now()
	inv := r.inv
	r.mu.Unlock()

	recordUndo(ctx, func() {
		r.mu.Lock()
		r.inv.Release(class, n)
		r.mu.Unlock()
	})
	return &inv, nil
}

func (s *Inventory) Release(ctx context.Context, key domain.InventoryKey, class domain.SeatClass, n int) (*domain.SeatInventory, error) {
	if !class.Valid() || n <= 0 {
		return nil, fmt.Errorf("%w: release %d seats of %s", domain.ErrValidation, n, class)
	}
	r, ok := s.row(key)
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}

	r.mu.Lock()
	before := r.inv.Booked[class]
	r.inv.Release(class, n)
	released := before - r.inv.Booked[class]
	r.inv.UpdatedAt = s.now()
	inv := r.inv
	r.mu.Unlock()

	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		// Seats freed here may already be taken again; never push past capacity.
		if free := r.inv.Available(class); released > free {
			released = free
		}
		r.inv.Booked[class] += released
	})
	return &inv, nil
}

func (r *inventoryRow) snapshot() *domain.SeatInventory {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv := r.inv
	return &inv
}

var _ repository.InventoryRepository = (*Inventory)(nil)
