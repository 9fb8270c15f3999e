package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"Round up at midpoint", "1898.75", 1899},
		{"Midpoint rounds away from zero", "10.5", 11},
		{"Even midpoint still rounds up", "253.5", 254},
		{"Round down below midpoint", "158.25", 158},
		{"No rounding needed", "1899", 1899},
		{"Long fraction", "3041.955", 3042},
		{"Negative midpoint", "-2.5", -3},
		{"Zero", "0", 0},
		{"Very small positive", "0.0035", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundWhole(decimal.RequireFromString(tt.input))
			if result != tt.expected {
				t.Errorf("RoundWhole(%s) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDivideRounded(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		n        int64
		expected int64
	}{
		{"Quarter remainder rounds down", 1899, 12, 158},
		{"Half remainder rounds up", 3042, 12, 254},
		{"Exact division", 1200, 12, 100},
		{"Small amount rounds to zero", 4, 12, 0},
		{"Half of one", 6, 12, 1},
		{"Zero amount", 0, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DivideRounded(tt.amount, tt.n)
			if result != tt.expected {
				t.Errorf("DivideRounded(%d, %d) = %d, expected %d", tt.amount, tt.n, result, tt.expected)
			}
		})
	}
}

func TestWithinRange(t *testing.T) {
	if !WithinRange(50000, 50000, 5000000) {
		t.Error("expected lower bound to be within range")
	}
	if !WithinRange(5000000, 50000, 5000000) {
		t.Error("expected upper bound to be within range")
	}
	if WithinRange(49999, 50000, 5000000) {
		t.Error("expected 49999 to be out of range")
	}
	if WithinRange(5000001, 50000, 5000000) {
		t.Error("expected 5000001 to be out of range")
	}
}
