package output

import (
	"github.com/hazza/property-roi/pkg/decimal"
)

// FormatMoney renders an amount as a whole number with thousands separators
// and a currency suffix, e.g. "52,900 AED".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatMoney(amount float64, currency string) string {
	return decimal.NewMoney(amount).Format(currency)
}

// FormatArea renders an area the same way money is rendered, with its unit.
func FormatArea(area float64, unit string) string {
	return decimal.NewMoney(area).Format(unit)
}

// FormatPercentage formats a value already in percentage units with 2 decimals.
func FormatPercentage(pct float64) string { return decimal.Percent(pct) }
