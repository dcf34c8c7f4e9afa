package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The charter business reports project P&L over a fiscal year running
// 1 November to 31 October. A date in November or December belongs to the
// fiscal year starting that same calendar year; January through October
// belong to the fiscal year that started the previous November.

// FiscalMonthCount is the fixed number of monthly buckets in a project P&L.
const FiscalMonthCount = 12

// FiscalStartYear returns the calendar year in which t's fiscal year begins.
func FiscalStartYear(t time.Time) int {
	if t.Month() >= time.November {
		return t.Year()
	}
	return t.Year() - 1
}

// FiscalYearOf labels t's fiscal year as "YYYY-YYYY", e.g. "2024-2025" for
// any date between 2024-11-01 and 2025-10-31.
func FiscalYearOf(t time.Time) string {
	start := FiscalStartYear(t)
	return fmt.Sprintf("%d-%d", start, start+1)
}

// ParseFiscalYear extracts the starting calendar year from a "YYYY-YYYY"
// label, validating that the span covers consecutive years.
func ParseFiscalYear(label string) (int, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return 0, fmt.Errorf("fiscal year must be formatted YYYY-YYYY, got %q", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid fiscal year %q: %w", label, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid fiscal year %q: %w", label, err)
	}
	if end != start+1 {
		return 0, fmt.Errorf("fiscal year %q must span consecutive years", label)
	}
	return start, nil
}

// FiscalMonthKeys returns the twelve "YYYY-MM" bucket keys for the fiscal
// year beginning in startYear, in fixed order November through October.
func FiscalMonthKeys(startYear int) []string {
	keys := make([]string, 0, FiscalMonthCount)
	cursor := time.Date(startYear, time.November, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < FiscalMonthCount; i++ {
		keys = append(keys, cursor.Format("2006-01"))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}

// MonthKey renders t's calendar month as a "YYYY-MM" bucket key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
