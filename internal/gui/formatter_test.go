package gui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDemoBalance(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Demo: 0.0000 ETH"},
		{0.04, "Demo: 0.0400 ETH"},
		{-0.02, "Demo: -0.0200 ETH"},
		{1234.5, "Demo: 1,234.5000 ETH"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDemoBalance(tt.in))
	}
}

func TestFormatEtherDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.000000 ETH"},
		{"0.1", "0.100000 ETH"},
		{"0.0000004", "0.000000 ETH"},
		{"1234567.123456789", "1,234,567.123457 ETH"},
		{"-2.5", "-2.500000 ETH"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEtherDecimal(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatStep(t *testing.T) {
	assert.Equal(t, "0.1", FormatStep(0.1))
	assert.Equal(t, "1", FormatStep(1))
	assert.Equal(t, "0.01", FormatAmountInput(0.01))
}
