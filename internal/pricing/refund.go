package pricing

import "github.com/shopspring/decimal"

// Refund returns amount * percentage / 100 rounded half-up to cents.
// The percentage is not capped here.
func Refund(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).DivRound(hundred, 2)
}
