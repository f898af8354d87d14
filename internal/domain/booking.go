package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is created once seats are reserved and only ever moves BOOKED -> CANCELLED.
type Booking struct {
	ID             string          `json:"id"`
	FlightID       int64           `json:"flight_id"`
	UserID         int64           `json:"user_id"`
	SeatClass      SeatClass       `json:"seat_class"`
	TravelDate     time.Time       `json:"travel_date"`
	SeatCount      int             `json:"seat_count"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountReason string          `json:"discount_reason"`
	Status         BookingStatus   `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NetAmount is what the customer pays: gross minus discount.
func (b *Booking) NetAmount() decimal.Decimal {
	return b.GrossAmount.Sub(b.DiscountAmount)
}

// CanCancel reports whether the booking may transition to CANCELLED.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusBooked
}

// BookingDetails joins a booking with the flight and carrier it was made on.
type BookingDetails struct {
	Booking
	NetAmount   decimal.Decimal `json:"net_amount"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	CarrierName string          `json:"carrier_name"`
	Fare        decimal.Decimal `json:"fare"`
}

type CancellationReceipt struct {
	BookingID        string          `json:"booking_id"`
	FlightID         int64           `json:"flight_id"`
	UserID           int64           `json:"user_id"`
	SeatClass        SeatClass       `json:"seat_class"`
	TravelDate       time.Time       `json:"travel_date"`
	SeatCount        int             `json:"seat_count"`
	BookingAmount    decimal.Decimal `json:"booking_amount"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
	Status           BookingStatus   `json:"status"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	CarrierName      string          `json:"carrier_name"`
}
