package domain

import (
	"fmt"
	"strings"
)

// SeatClass is a cabin category. Its numeric value indexes SeatCounts.
type SeatClass int

const (
	SeatClassEconomy SeatClass = iota
	SeatClassBusiness
	SeatClassExecutive

	NumSeatClasses = 3
)

// SeatClasses lists every cabin in SeatCounts order.
var SeatClasses = [NumSeatClasses]SeatClass{SeatClassEconomy, SeatClassBusiness, SeatClassExecutive}

var seatClassNames = [NumSeatClasses]string{"ECONOMY", "BUSINESS", "EXECUTIVE"}

func (c SeatClass) Valid() bool {
	return c >= 0 && int(c) < NumSeatClasses
}

func (c SeatClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("SeatClass(%d)", int(c))
	}
	return seatClassNames[c]
}

func ParseSeatClass(s string) (SeatClass, error) {
	for i, name := range seatClassNames {
		if strings.EqualFold(s, name) {
			return SeatClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown seat class %q", ErrValidation, s)
}

func (c SeatClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid seat class %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *SeatClass) UnmarshalText(text []byte) error {
	parsed, err := ParseSeatClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SeatCounts holds one counter per cabin, indexed by SeatClass.
type SeatCounts [NumSeatClasses]int

func (s SeatCounts) Of(c SeatClass) int {
	return s[c]
}
