package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency all statements are expressed in.
const ReportingCurrency = "THB"

// ExchangeRate is a conversion rate into the reporting currency effective
// from a given date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
