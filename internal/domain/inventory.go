package domain

import (
	"fmt"
	"time"
)

// InventoryKey identifies one seat inventory row.
type InventoryKey struct {
	FlightID   int64
	TravelDate time.Time
}

func NewInventoryKey(flightID int64, travelDate time.Time) InventoryKey {
	return InventoryKey{FlightID: flightID, TravelDate: DateOf(travelDate)}
}

func (k InventoryKey) String() string {
	return fmt.Sprintf("%d:%s", k.FlightID, k.TravelDate.Format(DateLayout))
}

// SeatInventory is the occupancy ledger of one flight on one travel date.
// Callers are responsible for serialising access to a single value.
type SeatInventory struct {
	FlightID   int64      `json:"flight_id"`
	TravelDate time.Time  `json:"travel_date"`
	Capacity   SeatCounts `json:"capacity"`
	Booked     SeatCounts `json:"booked"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewSeatInventory(key InventoryKey, capacity SeatCounts) SeatInventory {
	return SeatInventory{
		FlightID:   key.FlightID,
		TravelDate: key.TravelDate,
		Capacity:   capacity,
	}
}

func (inv *SeatInventory) Key() InventoryKey {
	return InventoryKey{FlightID: inv.FlightID, TravelDate: inv.TravelDate}
}

func (inv *SeatInventory) Available(class SeatClass) int {
	return inv.Capacity[class] - inv.Booked[class]
}

// Reserve books n seats of class or fails without touching the ledger.
func (inv *SeatInventory) Reserve(class SeatClass, n int) error {
	if !class.Valid() {
		return fmt.Errorf("%w: unknown seat class %d", ErrValidation, int(class))
	}
	if n <= 0 {
		return fmt.Errorf("%w: seat count must be positive", ErrValidation)
	}
	if inv.Booked[class]+n > inv.Capacity[class] {
		return &CapacityExceededError{Requested: n, Available: inv.Available(class)}
	}
	inv.Booked[class] += n
	return nil
}

// Release frees n seats of class, clamping the booked count at zero.
func (inv *SeatInventory) Release(class SeatClass, n int) {
	if !class.Valid() || n <= 0 {
		return
	}
	inv.Booked[class] -= n
	if inv.Booked[class] < 0 {
		inv.Booked[class] = 0
	}
}

// Availability is the per-class occupancy snapshot returned to callers.
type Availability struct {
	FlightID   int64      `json:"flight_id"`
	TravelDate time.Time  `json:"travel_date"`
	Capacity   SeatCounts `json:"capacity"`
	Booked     SeatCounts `json:"booked"`
	Available  SeatCounts `json:"available"`
}

func (inv *SeatInventory) Availability() Availability {
	a := Availability{
		FlightID:   inv.FlightID,
		TravelDate: inv.TravelDate,
		Capacity:   inv.Capacity,
		Booked:     inv.Booked,
	}
	for _, c := range SeatClasses {
		a.Available[c] = inv.Available(c)
	}
	return a
}
