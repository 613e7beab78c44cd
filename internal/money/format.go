package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders an amount as Brazilian reais, e.g. "R$ 1.234,56".
// Amounts are rounded to two fraction digits with banker's rounding
// (round half to even), so 10.005 becomes "R$ 10,00" and 10.015
// becomes "R$ 10,02". Never fails, including for zero and negative
// amounts.
func Format(amount decimal.Decimal) string {
	rounded := amount.RoundBank(2)
	return printer.Sprintf("R$ %v", number.Decimal(
		rounded.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
