// Package format renders amounts for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dollars returns a whole-dollar currency string with thousands separators
// (e.g., "$1,899" or "-$1,899").
func Dollars(amount int64) string {
	if amount < 0 {
		return "-$" + Number(-amount)
	}
	return "$" + Number(amount)
}

// Number returns an integer with thousands separators (e.g., "350,000").
func Number(value int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", value)
}
