package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"0.004", "0"},
		{"1.235", "1.24"},
		{"1.245", "1.25"},
		{"100", "100"},
		{"99.999", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestOrZero(t *testing.T) {
	assert.True(t, OrZero(decimal.NullDecimal{}).IsZero())
	assert.True(t, OrZero(Null(decimal.NewFromFloat(12.5))).Equal(decimal.NewFromFloat(12.5)))
}
