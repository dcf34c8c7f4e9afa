package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

func TestLineTotals(t *testing.T) {
	lines := []domain.JournalLine{
		{LineType: domain.Debit, Amount: decimal.NewFromInt(300)},
		{LineType: domain.Debit, Amount: decimal.NewFromInt(200)},
		{LineType: domain.Credit, Amount: decimal.NewFromInt(500)},
	}

	totalDebit, totalCredit := domain.LineTotals(lines)

	assert.True(t, totalDebit.Equal(decimal.NewFromInt(500)))
	assert.True(t, totalCredit.Equal(decimal.NewFromInt(500)))
}

func TestLinesBalanced(t *testing.T) {
	testCases := []struct {
		name   string
		debit  decimal.Decimal
		credit decimal.Decimal
		want   bool
	}{
		{"exactly balanced", decimal.NewFromInt(1000), decimal.NewFromInt(1000), true},
		{"within tolerance", decimal.NewFromFloat(1000.004), decimal.NewFromInt(1000), true},
		{"at tolerance boundary", decimal.NewFromFloat(1000.01), decimal.NewFromInt(1000), false},
		{"clearly unbalanced", decimal.NewFromInt(1000), decimal.NewFromInt(900), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []domain.JournalLine{
				{LineType: domain.Debit, Amount: tc.debit},
				{LineType: domain.Credit, Amount: tc.credit},
			}
			assert.Equal(t, tc.want, domain.LinesBalanced(lines))
		})
	}
}

func TestFormatReferenceNumber(t *testing.T) {
	assert.Equal(t, "JE-2025-001", domain.FormatReferenceNumber(domain.ReferencePrefix, 2025, 1))
	assert.Equal(t, "JE-2025-042", domain.FormatReferenceNumber(domain.ReferencePrefix, 2025, 42))
	// The sequence widens past three digits instead of wrapping.
	assert.Equal(t, "JE-2025-1000", domain.FormatReferenceNumber(domain.ReferencePrefix, 2025, 1000))
}

func TestSignedNet(t *testing.T) {
	debits := decimal.NewFromInt(500)
	credits := decimal.NewFromInt(300)

	assert.True(t, domain.SignedNet(domain.DebitNormal, debits, credits).Equal(decimal.NewFromInt(200)))
	assert.True(t, domain.SignedNet(domain.CreditNormal, debits, credits).Equal(decimal.NewFromInt(-200)))
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, domain.WithinTolerance(decimal.NewFromFloat(0.005), decimal.Zero))
	assert.False(t, domain.WithinTolerance(decimal.NewFromFloat(0.01), decimal.Zero))
}
