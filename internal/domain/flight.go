package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Flight struct {
	ID          int64           `json:"id"`
	CarrierID   int64           `json:"carrier_id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Fare        decimal.Decimal `json:"fare"`
	Capacity    SeatCounts      `json:"capacity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Carrier struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
}
