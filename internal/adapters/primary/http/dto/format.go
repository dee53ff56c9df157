package dto

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price in rupiah with thousands separators and two decimals.
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("Rp %.2f", v)
}
