// Package format holds the display helpers shared by the pages: money,
// dates, relative times, roles and media URLs.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vnPrinter = message.NewPrinter(language.Vietnamese)

// VND formats an amount of Vietnamese dong, which has no minor unit, using
// Vietnamese digit grouping: 500000 -> "500.000 ₫".
func VND(amount float64) string {
	return vnPrinter.Sprintf("%d", int64(math.Round(amount))) + " ₫"
}

// Price is VND, except that free courses read "Free".
func Price(amount float64) string {
	if amount <= 0 {
		return "Free"
	}
	return VND(amount)
}
