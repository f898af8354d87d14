package memory

import (
	"fmt"
	"os"
	"strings"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Store bundles every in-memory repository.
type Store struct {
	Flights    *Flights
	Carriers   *Carriers
	Users      *Users
	Bookings   *Bookings
	Inventory  *Inventory
	Transactor *Transactor
}

func NewStore() *Store {
	return &Store{
		Flights:    NewFlights(),
		Carriers:   NewCarriers(),
		Users:      NewUsers(),
		Bookings:   NewBookings(),
		Inventory:  NewInventory(),
		Transactor: NewTransactor(),
	}
}

type fixtures struct {
	Carriers []struct {
		ID               int64  `yaml:"id"`
		Name             string `yaml:"name"`
		RefundPercentage string `yaml:"refund_percentage"`
	} `yaml:"carriers"`
	Flights []struct {
		ID          int64          `yaml:"id"`
		CarrierID   int64          `yaml:"carrier_id"`
		Origin      string         `yaml:"origin"`
		Destination string         `yaml:"destination"`
		Fare        string         `yaml:"fare"`
		Capacity    map[string]int `yaml:"capacity"`
	} `yaml:"flights"`
	Users []struct {
		ID    int64  `yaml:"id"`
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
		Tier  string `yaml:"tier"`
	} `yaml:"users"`
}

// LoadFixtures seeds the catalog (carriers, flights, users) from a YAML file.
func (s *Store) LoadFixtures(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixtures: %w", err)
	}
	return s.loadFixtures(data)
}

func (s *Store) loadFixtures(data []byte) error {
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("failed to parse fixtures: %w", err)
	}

	for _, c := range fx.Carriers {
		pct, err := decimal.NewFromString(c.RefundPercentage)
		if err != nil {
			return fmt.Errorf("carrier %d refund_percentage: %w", c.ID, err)
		}
		s.Carriers.Put(domain.Carrier{ID: c.ID, Name: c.Name, RefundPercentage: pct})
	}

	for _, f := range fx.Flights {
		fare, err := decimal.NewFromString(f.Fare)
		if err != nil {
			return fmt.Errorf("flight %d fare: %w", f.ID, err)
		}
		var capacity domain.SeatCounts
		for name, seats := range f.Capacity {
			class, err := domain.ParseSeatClass(strings.TrimSpace(name))
			if err != nil {
				return fmt.Errorf("flight %d capacity: %w", f.ID, err)
			}
			capacity[class] = seats
		}
		s.Flights.Put(domain.Flight{
			ID:          f.ID,
			CarrierID:   f.CarrierID,
			Origin:      f.Origin,
			Destination: f.Destination,
			Fare:        fare,
			Capacity:    capacity,
		})
	}

	for _, u := range fx.Users {
		tier, err := domain.ParseCustomerTier(u.Tier)
		if err != nil {
			return fmt.Errorf("user %d: %w", u.ID, err)
		}
		s.Users.Put(domain.User{ID: u.ID, Name: u.Name, Email: u.Email, Tier: tier})
	}
	return nil
}
