package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalStartYear(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Time
		want int
	}{
		{"first day of fiscal year", date(2024, time.November, 1), 2024},
		{"december belongs to same start year", date(2024, time.December, 31), 2024},
		{"january rolls back to prior november", date(2025, time.January, 1), 2024},
		{"last day of fiscal year", date(2025, time.October, 31), 2024},
		{"next fiscal year begins", date(2025, time.November, 1), 2025},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.FiscalStartYear(tc.in))
		})
	}
}

func TestFiscalYearOf(t *testing.T) {
	assert.Equal(t, "2024-2025", domain.FiscalYearOf(date(2025, time.February, 14)))
	assert.Equal(t, "2025-2026", domain.FiscalYearOf(date(2025, time.November, 1)))
}

func TestParseFiscalYear(t *testing.T) {
	start, err := domain.ParseFiscalYear("2024-2025")
	require.NoError(t, err)
	assert.Equal(t, 2024, start)

	for _, label := range []string{"2024", "2024-2026", "abcd-efgh", "2024-2025-2026", ""} {
		_, err := domain.ParseFiscalYear(label)
		assert.Error(t, err, "label %q should be rejected", label)
	}
}

func TestFiscalMonthKeys(t *testing.T) {
	keys := domain.FiscalMonthKeys(2024)
	require.Len(t, keys, domain.FiscalMonthCount)
	assert.Equal(t, "2024-11", keys[0])
	assert.Equal(t, "2024-12", keys[1])
	assert.Equal(t, "2025-01", keys[2])
	assert.Equal(t, "2025-10", keys[11])
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", domain.MonthKey(date(2025, time.June, 15)))
}
