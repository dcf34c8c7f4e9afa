package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Actor reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Actor reference
}

// BalanceTolerance is the maximum absolute difference between two monetary
// amounts that is still treated as equal. Entry balance checks, statement
// totals and net-profit skip thresholds all use this value.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// WithinTolerance reports whether the absolute difference between a and b
// is below BalanceTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}
