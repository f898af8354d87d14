package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefund(t *testing.T) {
	testCases := []struct {
		amount  string
		percent string
		want    string
	}{
		{"200.00", "80.00", "160.00"},
		{"1500.00", "75.50", "1132.50"},
		{"99.99", "33.33", "33.33"},
		{"0.05", "50", "0.03"},
		{"100", "0", "0"},
		{"100", "120", "120"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount+"x"+tc.percent, func(t *testing.T) {
			got := Refund(dec(tc.amount), dec(tc.percent))
			assert.True(t, dec(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}
