package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/repository"
)

type Bookings struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	now      func() time.Time
}

func NewBookings() *Bookings {
	return &Bookings{
		bookings: make(map[string]domain.Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Bookings) Create(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	now := s.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	s.bookings[booking.ID] = *booking

	id := booking.ID
	recordUndo(ctx, func() {
		s.mu.Lock()
		delete(s.bookings, id)
		s.mu.Unlock()
	})
	return nil
}

func (s *Bookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (s *Bookings) ListByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Bookings) MarkCancelled(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !b.CanCancel() {
		return nil, fmt.Errorf("%w: booking %s is %s", domain.ErrInvalidState, id, b.Status)
	}

	previous := b
	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = s.now()
	s.bookings[id] = b

	recordUndo(ctx, func() {
		s.mu.Lock()
		s.bookings[id] = previous
		s.mu.Unlock()
	})
	return &b, nil
}

var _ repository.BookingRepository = (*Bookings)(nil)
