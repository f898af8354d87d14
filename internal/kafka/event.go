package kafka

import (
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/shopspring/decimal"
)

// BookingEvent is the payload written to the booking and notification topics.
type BookingEvent struct {
	Type           string           `json:"type"`
	BookingID      string           `json:"booking_id"`
	FlightID       int64            `json:"flight_id"`
	UserID         int64            `json:"user_id"`
	SeatClass      domain.SeatClass `json:"seat_class"`
	TravelDate     string           `json:"travel_date"`
	SeatCount      int              `json:"seat_count"`
	NetAmount      decimal.Decimal  `json:"net_amount"`
	DiscountReason string           `json:"discount_reason,omitempty"`
	RefundAmount   *decimal.Decimal `json:"refund_amount,omitempty"`
	Status         string           `json:"status"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:           eventType,
		BookingID:      b.ID,
		FlightID:       b.FlightID,
		UserID:         b.UserID,
		SeatClass:      b.SeatClass,
		TravelDate:     b.TravelDate.Format(domain.DateLayout),
		SeatCount:      b.SeatCount,
		NetAmount:      b.NetAmount(),
		DiscountReason: b.DiscountReason,
		Status:         string(b.Status),
		OccurredAt:     at.UTC(),
	}
}

func (e BookingEvent) EventType() string {
	return e.Type
}
