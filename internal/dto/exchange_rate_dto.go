package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest records a conversion rate into the reporting
// currency effective from a date.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	DateEffective    time.Time       `json:"dateEffective" binding:"required" time_format:"2006-01-02"`
}
