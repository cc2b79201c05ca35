package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyLocale and CurrencySymbol fix the display to Brazilian Real.
var CurrencyLocale = language.BrazilianPortuguese

const CurrencySymbol = "R$"

// FormatCurrency renders an amount as BRL, e.g. 1234.5 -> "R$ 1.234,50".
// Negative amounts keep the sign in front of the symbol: "-R$ 20,00".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	p := message.NewPrinter(CurrencyLocale)
	formatted := p.Sprint(number.Decimal(rounded.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return sign + CurrencySymbol + " " + formatted
}

// FormatPercent renders a 0-100 progress value with up to one decimal, e.g. 42.55 -> "42,6%".
func FormatPercent(progress decimal.Decimal) string {
	p := message.NewPrinter(CurrencyLocale)
	return p.Sprint(number.Decimal(progress.Round(1).InexactFloat64(), number.MaxFractionDigits(1))) + "%"
}
