package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/repository"
)

type Flights struct {
	mu      sync.RWMutex
	flights map[int64]domain.Flight
}

func NewFlights() *Flights {
	return &Flights{flights: make(map[int64]domain.Flight)}
}

func (s *Flights) Put(f domain.Flight) {
	s.mu.Lock()
	s.flights[f.ID] = f
	s.mu.Unlock()
}

func (s *Flights) List(_ context.Context) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Flights) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.flights[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return &f, nil
}

type Carriers struct {
	mu       sync.RWMutex
	carriers map[int64]domain.Carrier
}

func NewCarriers() *Carriers {
	return &Carriers{carriers: make(map[int64]domain.Carrier)}
}

func (s *Carriers) Put(c domain.Carrier) {
	s.mu.Lock()
	s.carriers[c.ID] = c
	s.mu.Unlock()
}

func (s *Carriers) GetByID(_ context.Context, id int64) (*domain.Carrier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carriers[id]
	if !ok {
		return nil, domain.ErrCarrierNotFound
	}
	return &c, nil
}

type Users struct {
	mu    sync.RWMutex
	users map[int64]domain.User
}

func NewUsers() *Users {
	return &Users{users: make(map[int64]domain.User)}
}

func (s *Users) Put(u domain.User) {
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
}

func (s *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

var (
	_ repository.FlightRepository  = (*Flights)(nil)
	_ repository.CarrierRepository = (*Carriers)(nil)
	_ repository.UserRepository    = (*Users)(nil)
)
