// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/shopspring/decimal"
)

// RoundWhole rounds a value to whole currency units, half away from zero.
func RoundWhole(val decimal.Decimal) int64 {
	return val.Round(0).IntPart()
}

// DivideRounded divides a whole amount into n equal parts and rounds the
// share half away from zero. n must be positive.
func DivideRounded(amount int64, n int64) int64 {
	return RoundWhole(decimal.NewFromInt(amount).Div(decimal.NewFromInt(n)))
}

// WithinRange reports whether val lies in the closed range [lo, hi].
func WithinRange(val, lo, hi int64) bool {
	return val >= lo && val <= hi
}
