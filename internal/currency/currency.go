// Package currency renders rupee amounts for display. Stored values
// stay plain unrounded numbers; this is presentation only.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with the rupee sign, Indian digit grouping
// and zero-to-two fraction digits.
func Format(amount float64) string {
	if amount < 0 {
		return "-" + Format(-amount)
	}
	return printer.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
}
