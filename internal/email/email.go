// Package email turns booking events into customer notifications.
package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/rs/zerolog"
)

type Message struct {
	UserID  int64
	Subject string
	Body    string
}

// Sender delivers notifications. Delivery is a structured log line until a mail
// provider is configured.
type Sender struct {
	logger zerolog.Logger
}

func NewSender(logger zerolog.Logger) *Sender {
	return &Sender{logger: logger.With().Str("component", "notifications").Logger()}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	msg, err := Compose(event)
	if err != nil {
		s.logger.Warn().Err(err).Str("booking_id", event.BookingID).Msg("notification skipped")
		return nil
	}
	s.logger.Info().
		Int64("user_id", msg.UserID).
		Str("booking_id", event.BookingID).
		Str("subject", msg.Subject).
		Msg("notification sent")
	return nil
}

func Compose(event kafka.BookingEvent) (Message, error) {
	switch event.Type {
	case "booking_created":
		return Message{
			UserID:  event.UserID,
			Subject: fmt.Sprintf("Booking %s confirmed", event.BookingID),
			Body: fmt.Sprintf("%d %s seat(s) on flight %d for %s. Total %s (%s).",
				event.SeatCount, event.SeatClass, event.FlightID, event.TravelDate,
				event.NetAmount.StringFixed(2), event.DiscountReason),
		}, nil
	case "booking_cancelled":
		refund := "0.00"
		if event.RefundAmount != nil {
			refund = event.RefundAmount.StringFixed(2)
		}
		return Message{
			UserID:  event.UserID,
			Subject: fmt.Sprintf("Booking %s cancelled", event.BookingID),
			Body: fmt.Sprintf("Your booking on flight %d for %s was cancelled. Refund %s.",
				event.FlightID, event.TravelDate, refund),
		}, nil
	default:
		return Message{}, fmt.Errorf("unknown event type %q", event.Type)
	}
}
