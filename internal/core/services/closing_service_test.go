package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/core/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

type ClosingServiceTestSuite struct {
	suite.Suite
	mockJournalSvc *MockJournalSvc
	service        portssvc.ClosingSvcFacade
	userID         string
}

func (suite *ClosingServiceTestSuite) SetupTest() {
	suite.mockJournalSvc = new(MockJournalSvc)
	suite.service = services.NewClosingService(suite.mockJournalSvc)
	suite.userID = uuid.NewString()
}

func (suite *ClosingServiceTestSuite) TestImportPriorYear_ProfitClosesToRetainedEarnings() {
	ctx := context.Background()
	req := dto.PriorYearImportRequest{
		CompanyID:  "acme",
		FiscalYear: "2024-2025",
		Projects: []dto.PriorYearProjectTotals{
			{
				ProjectID:      "yacht-a",
				TotalIncome:    decimal.NewFromInt(500000),
				TotalExpenses:  decimal.NewFromInt(300000),
				ManagementFees: decimal.NewFromInt(10000),
			},
		},
	}
	lastDay := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)

	suite.mockJournalSvc.On("ImportPostedEntry", ctx, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.Date.Equal(lastDay) &&
			len(r.Lines) == 2 &&
			r.Lines[0].AccountCode == services.CurrentYearEarningsAccount &&
			r.Lines[0].LineType == domain.Debit &&
			r.Lines[0].Amount.Equal(decimal.NewFromInt(190000)) &&
			r.Lines[1].AccountCode == services.RetainedEarningsPriorYearsAccount &&
			r.Lines[1].LineType == domain.Credit &&
			r.Lines[1].Amount.Equal(decimal.NewFromInt(190000))
	}), suite.userID).Return(&domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}, nil).Once()

	result, err := suite.service.ImportPriorYear(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("2024-2025", result.FiscalYear)
	suite.Len(result.Entries, 1)
	suite.Empty(result.SkippedProjects)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ClosingServiceTestSuite) TestImportPriorYear_LossSwapsSides() {
	ctx := context.Background()
	req := dto.PriorYearImportRequest{
		CompanyID:  "acme",
		FiscalYear: "2023-2024",
		Projects: []dto.PriorYearProjectTotals{
			{
				ProjectID:     "yacht-b",
				TotalIncome:   decimal.NewFromInt(100000),
				TotalExpenses: decimal.NewFromInt(140000),
			},
		},
	}

	suite.mockJournalSvc.On("ImportPostedEntry", ctx, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.Lines[0].AccountCode == services.RetainedEarningsPriorYearsAccount &&
			r.Lines[0].LineType == domain.Debit &&
			r.Lines[1].AccountCode == services.CurrentYearEarningsAccount &&
			r.Lines[1].LineType == domain.Credit &&
			r.Lines[0].Amount.Equal(decimal.NewFromInt(40000))
	}), suite.userID).Return(&domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}, nil).Once()

	result, err := suite.service.ImportPriorYear(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result.Entries, 1)
}

func (suite *ClosingServiceTestSuite) TestImportPriorYear_ImmaterialNetSkipped() {
	ctx := context.Background()
	req := dto.PriorYearImportRequest{
		CompanyID:  "acme",
		FiscalYear: "2024-2025",
		Projects: []dto.PriorYearProjectTotals{
			{
				ProjectID:     "yacht-c",
				TotalIncome:   decimal.NewFromFloat(100.005),
				TotalExpenses: decimal.NewFromInt(100),
			},
			{
				ProjectID:     "yacht-d",
				TotalIncome:   decimal.NewFromInt(50000),
				TotalExpenses: decimal.NewFromInt(20000),
			},
		},
	}

	suite.mockJournalSvc.On("ImportPostedEntry", ctx, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(&domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}, nil).Once()

	result, err := suite.service.ImportPriorYear(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result.Entries, 1)
	suite.Equal([]string{"yacht-c"}, result.SkippedProjects)
}

func (suite *ClosingServiceTestSuite) TestImportPriorYear_InvalidFiscalYear() {
	ctx := context.Background()
	req := dto.PriorYearImportRequest{
		CompanyID:  "acme",
		FiscalYear: "2024-2026",
		Projects: []dto.PriorYearProjectTotals{
			{ProjectID: "yacht-a", TotalIncome: decimal.NewFromInt(1000)},
		},
	}

	result, err := suite.service.ImportPriorYear(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "ImportPostedEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestClosingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClosingServiceTestSuite))
}
