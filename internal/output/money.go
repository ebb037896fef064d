package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes amounts when no symbol is configured
const DefaultCurrencySymbol = "₹"

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
)

// FormatGrouped renders a whole-unit amount with thousands separators, e.g. ₹420,000
func FormatGrouped(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	units := amount.Round(0)
	if units.IsNegative() {
		return "-" + symbol + humanize.BigComma(units.Neg().BigInt())
	}
	return symbol + humanize.BigComma(units.BigInt())
}

// FormatAmount renders an amount compactly: crores as "Cr", lakhs as "L",
// anything smaller with grouped digits
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	if amount.IsNegative() {
		return "-" + FormatAmount(amount.Neg(), symbol)
	}
	switch {
	case amount.GreaterThanOrEqual(crore):
		return symbol + amount.Div(crore).StringFixed(1) + " Cr"
	case amount.GreaterThanOrEqual(lakh):
		return symbol + amount.Div(lakh).StringFixed(1) + " L"
	default:
		return FormatGrouped(amount, symbol)
	}
}

// FormatYears renders a goal duration, spelling out the unreachable sentinel
func FormatYears(years int) string {
	switch {
	case years < 0:
		return "Not reachable"
	case years == 1:
		return "1 year"
	default:
		return fmt.Sprintf("%d years", years)
	}
}

// FormatPercentage formats a fraction (0.1) as a percentage (10.00%)
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
