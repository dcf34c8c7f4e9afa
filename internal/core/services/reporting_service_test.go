package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockJournalEntryRepository
	mockRegistry  *MockAccountRegistry
	service       portssvc.ReportingSvcFacade
	asOf          time.Time
	chart         map[string]domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockJournalEntryRepository)
	suite.mockRegistry = new(MockAccountRegistry)
	suite.service = services.NewReportingService(suite.mockEntryRepo, suite.mockRegistry)
	suite.asOf = time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)

	suite.chart = map[string]domain.Account{
		"1000": {Code: "1000", Name: "Cash and Bank", AccountType: domain.Asset, SubType: "Current Asset", NormalBalance: domain.DebitNormal},
		"1500": {Code: "1500", Name: "Vessels", AccountType: domain.Asset, SubType: "Fixed Asset", NormalBalance: domain.DebitNormal},
		"2100": {Code: "2100", Name: "Deferred Charter Revenue", AccountType: domain.Liability, SubType: "Current Liability", NormalBalance: domain.CreditNormal},
		"3100": {Code: "3100", Name: "Retained Earnings - Prior Years", AccountType: domain.Equity, SubType: "Retained Earnings", NormalBalance: domain.CreditNormal},
		"4000": {Code: "4000", Name: "Charter Revenue", AccountType: domain.Revenue, SubType: "Operating Revenue", NormalBalance: domain.CreditNormal},
		"5000": {Code: "5000", Name: "Vessel Operating Expenses", AccountType: domain.Expense, SubType: "Operating Expense", NormalBalance: domain.DebitNormal},
	}
	for code := range suite.chart {
		account := suite.chart[code]
		suite.mockRegistry.On("LookupAccount", mock.Anything, code).Return(&account, nil).Maybe()
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Balanced() {
	ctx := context.Background()
	activity := []domain.AccountActivity{
		{AccountCode: "1000", TotalDebits: decimal.NewFromInt(500000), TotalCredits: decimal.NewFromInt(300000)},
		{AccountCode: "4000", TotalDebits: decimal.Zero, TotalCredits: decimal.NewFromInt(500000)},
		{AccountCode: "5000", TotalDebits: decimal.NewFromInt(300000), TotalCredits: decimal.Zero},
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.Len(report.Rows, 3)
	suite.True(report.TotalDebits.Equal(decimal.NewFromInt(500000)))
	suite.True(report.TotalCredits.Equal(decimal.NewFromInt(500000)))
	suite.True(report.IsBalanced)
	suite.True(report.Difference.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_EmptyPeriodIsZeroRowReport() {
	ctx := context.Background()
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return([]domain.AccountActivity{}, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.Empty(report.Rows)
	suite.True(report.TotalDebits.IsZero())
	suite.True(report.TotalCredits.IsZero())
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AnomalousBalanceFlipsColumn() {
	ctx := context.Background()
	// Cash is debit-normal but credits exceed debits (overdrawn): the net
	// must land in the credit column, not vanish.
	activity := []domain.AccountActivity{
		{AccountCode: "1000", TotalDebits: decimal.NewFromInt(100), TotalCredits: decimal.NewFromInt(400)},
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	row := report.Rows[0]
	suite.True(row.DebitBalance.IsZero())
	suite.True(row.CreditBalance.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NearZeroBalancesDropped() {
	ctx := context.Background()
	activity := []domain.AccountActivity{
		{AccountCode: "1000", TotalDebits: decimal.NewFromFloat(100.005), TotalCredits: decimal.NewFromInt(100)},
		{AccountCode: "5000", TotalDebits: decimal.NewFromInt(50), TotalCredits: decimal.Zero},
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("5000", report.Rows[0].AccountCode)
}

// Posting only balanced entries must always produce a balanced trial
// balance, whatever the mix of accounts and amounts.
func (suite *ReportingServiceTestSuite) TestTrialBalance_RandomBalancedActivityAlwaysBalances() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))
	codes := []string{"1000", "1500", "2100", "3100", "4000", "5000"}

	totals := make(map[string]*domain.AccountActivity, len(codes))
	for _, code := range codes {
		totals[code] = &domain.AccountActivity{AccountCode: code, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	}

	// Simulate 200 balanced entries: each moves a random amount between two
	// random distinct accounts.
	for i := 0; i < 200; i++ {
		amount := decimal.NewFromInt(rng.Int63n(100000) + 1)
		debit := codes[rng.Intn(len(codes))]
		credit := codes[rng.Intn(len(codes))]
		if debit == credit {
			continue
		}
		totals[debit].TotalDebits = totals[debit].TotalDebits.Add(amount)
		totals[credit].TotalCredits = totals[credit].TotalCredits.Add(amount)
	}

	activity := make([]domain.AccountActivity, 0, len(totals))
	for _, code := range codes {
		activity = append(activity, *totals[code])
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.True(report.IsBalanced, "difference was %s", report.Difference)
	suite.True(report.TotalDebits.Equal(report.TotalCredits))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_SectionsAndGrouping() {
	ctx := context.Background()
	activity := []domain.AccountActivity{
		{AccountCode: "1000", TotalDebits: decimal.NewFromInt(800000), TotalCredits: decimal.NewFromInt(100000)},
		{AccountCode: "1500", TotalDebits: decimal.NewFromInt(2000000), TotalCredits: decimal.Zero},
		{AccountCode: "2100", TotalDebits: decimal.Zero, TotalCredits: decimal.NewFromInt(900000)},
		{AccountCode: "3100", TotalDebits: decimal.Zero, TotalCredits: decimal.NewFromInt(1800000)},
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.asOf, "")

	suite.Require().NoError(err)

	suite.Require().Len(report.Assets.Groups, 2)
	// Canonical ordering puts Current Asset before Fixed Asset.
	suite.Equal("Current Asset", report.Assets.Groups[0].SubType)
	suite.Equal("Fixed Asset", report.Assets.Groups[1].SubType)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(2700000)))

	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(900000)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(1800000)))
	suite.True(report.TotalLiabilitiesAndEquity.Equal(decimal.NewFromInt(2700000)))
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ImbalanceSurfacedNotThrown() {
	ctx := context.Background()
	activity := []domain.AccountActivity{
		{AccountCode: "1000", TotalDebits: decimal.NewFromInt(1000), TotalCredits: decimal.Zero},
		{AccountCode: "2100", TotalDebits: decimal.Zero, TotalCredits: decimal.NewFromInt(400)},
	}
	suite.mockEntryRepo.On("PostedAccountActivity", ctx, "", suite.asOf).Return(activity, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.asOf, "")

	suite.Require().NoError(err)
	suite.False(report.IsBalanced)
	suite.True(report.Difference.Equal(decimal.NewFromInt(600)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
