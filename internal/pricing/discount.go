// Package pricing holds the pure fare computations used by the booking lifecycle.
package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/shopspring/decimal"
)

const NoDiscountReason = "No discounts applied"

var hundred = decimal.NewFromInt(100)

// AdvanceTier grants Percent when a booking is made at least MinDays before travel.
type AdvanceTier struct {
	MinDays int
	Percent int64
}

// DiscountPolicy prices a booking from three independent factors, each a percentage
// of the base fare: advance purchase, customer tier and bulk size.
type DiscountPolicy struct {
	// AdvanceTiers must be ordered by MinDays descending; the first match wins.
	AdvanceTiers []AdvanceTier
	TierPercent  map[domain.CustomerTier]int64
	BulkMinSeats int
	BulkPercent  int64
}

func NewDiscountPolicy() *DiscountPolicy {
	return &DiscountPolicy{
		AdvanceTiers: []AdvanceTier{
			{MinDays: 30, Percent: 15},
			{MinDays: 14, Percent: 10},
			{MinDays: 7, Percent: 5},
		},
		TierPercent: map[domain.CustomerTier]int64{
			domain.CustomerTierPremium:  25,
			domain.CustomerTierPlatinum: 20,
			domain.CustomerTierGold:     15,
			domain.CustomerTierSilver:   10,
			domain.CustomerTierRegular:  0,
		},
		BulkMinSeats: 5,
		BulkPercent:  10,
	}
}

type DiscountInput struct {
	Fare       decimal.Decimal
	Tier       domain.CustomerTier
	Today      time.Time
	TravelDate time.Time
	SeatCount  int
}

type Discount struct {
	Amount  decimal.Decimal
	Reasons []string
}

// Reason renders the applied factors in order, or NoDiscountReason.
func (d Discount) Reason() string {
	if len(d.Reasons) == 0 {
		return NoDiscountReason
	}
	return strings.Join(d.Reasons, ", ")
}

func (p *DiscountPolicy) Compute(in DiscountInput) Discount {
	var (
		percent int64
		reasons []string
	)

	days := domain.DaysBetween(in.Today, in.TravelDate)
	for _, tier := range p.AdvanceTiers {
		if days >= tier.MinDays {
			percent += tier.Percent
			reasons = append(reasons, fmt.Sprintf("Advance booking (%d+ days): %d%%", tier.MinDays, tier.Percent))
			break
		}
	}

	if pct := p.TierPercent[in.Tier]; pct > 0 {
		percent += pct
		reasons = append(reasons, fmt.Sprintf("Customer category (%s): %d%%", in.Tier, pct))
	}

	if p.BulkMinSeats > 0 && in.SeatCount >= p.BulkMinSeats {
		percent += p.BulkPercent
		reasons = append(reasons, fmt.Sprintf("Bulk booking (%d+ seats): %d%%", p.BulkMinSeats, p.BulkPercent))
	}

	seats := decimal.NewFromInt(int64(in.SeatCount))
	gross := Gross(in.Fare, in.SeatCount)
	amount := in.Fare.Mul(decimal.NewFromInt(percent)).Div(hundred).Mul(seats)
	if amount.GreaterThan(gross) {
		amount = gross
	}

	return Discount{
		Amount:  amount.Round(2),
		Reasons: reasons,
	}
}

// Gross is the undiscounted price of seatCount seats.
func Gross(fare decimal.Decimal, seatCount int) decimal.Decimal {
	return fare.Mul(decimal.NewFromInt(int64(seatCount)))
}
