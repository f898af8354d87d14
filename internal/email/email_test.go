package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeCreated(t *testing.T) {
	msg, err := Compose(kafka.BookingEvent{
		Type:           "booking_created",
		BookingID:      "b-1",
		FlightID:       7,
		UserID:         3,
		SeatClass:      domain.SeatClassEconomy,
		TravelDate:     "2030-05-01",
		SeatCount:      2,
		NetAmount:      decimal.RequireFromString("1700"),
		DiscountReason: "Advance booking (30+ days): 15%",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.UserID)
	assert.Equal(t, "Booking b-1 confirmed", msg.Subject)
	assert.Equal(t, "2 ECONOMY seat(s) on flight 7 for 2030-05-01. Total 1700.00 (Advance booking (30+ days): 15%).", msg.Body)
}

func TestComposeCancelled(t *testing.T) {
	refund := decimal.RequireFromString("160")
	msg, err := Compose(kafka.BookingEvent{Type: "booking_cancelled", BookingID: "b-2", FlightID: 1, TravelDate: "2030-01-02", RefundAmount: &refund})
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Refund 160.00.")
}

func TestSendSkipsUnknownEvents(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(zerolog.New(&buf))

	require.NoError(t, s.Send(context.Background(), kafka.BookingEvent{Type: "booking_expired", BookingID: "b-3"}))
	assert.Contains(t, buf.String(), "notification skipped")

	buf.Reset()
	require.NoError(t, s.Send(context.Background(), kafka.BookingEvent{Type: "booking_created", BookingID: "b-4"}))
	assert.Contains(t, buf.String(), "notification sent")
}
