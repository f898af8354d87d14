package domain

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf drops the clock part of t, keeping its calendar date as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: travel date %q must be YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// DaysBetween is the floor of the calendar-day difference to - from.
func DaysBetween(from, to time.Time) int {
	diff := DateOf(to).Sub(DateOf(from))
	return int(math.Floor(diff.Hours() / 24))
}
