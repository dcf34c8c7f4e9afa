package services

import "github.com/shopspring/decimal"

// legacyTHBRates is a migration shim for historical documents recorded
// before exchange rates were captured at creation time. It is consulted only
// when a document carries no stored rate and the rate service has none for
// the date. Conversions through this table are tagged LEGACY_FALLBACK in
// report output so they can be located and backfilled, after which the table
// can be deleted.
var legacyTHBRates = map[string]decimal.Decimal{
	"EUR": decimal.NewFromFloat(38.50),
	"USD": decimal.NewFromFloat(35.00),
	"GBP": decimal.NewFromFloat(44.00),
	"AUD": decimal.NewFromFloat(23.00),
	"SGD": decimal.NewFromFloat(26.00),
}

// legacyTHBRate looks up the shim table.
func legacyTHBRate(currencyCode string) (decimal.Decimal, bool) {
	rate, ok := legacyTHBRates[currencyCode]
	return rate, ok
}
