package dto

import (
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceResponse is the API representation of a trial balance report.
type TrialBalanceResponse struct {
	AsOf      string                   `json:"asOf"`
	CompanyID string                   `json:"companyID,omitempty"`
	Rows      []domain.TrialBalanceRow `json:"rows"`
	Totals    struct {
		Debits  decimal.Decimal `json:"debits"`
		Credits decimal.Decimal `json:"credits"`
	} `json:"totals"`
	IsBalanced bool            `json:"isBalanced"`
	Difference decimal.Decimal `json:"difference"`
}

// ToTrialBalanceResponse converts a domain trial balance report.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf:       report.AsOf.Format("2006-01-02"),
		CompanyID:  report.CompanyID,
		Rows:       report.Rows,
		IsBalanced: report.IsBalanced,
		Difference: report.Difference,
	}
	resp.Totals.Debits = report.TotalDebits
	resp.Totals.Credits = report.TotalCredits
	return resp
}

// BalanceSheetResponse is the API representation of a balance sheet.
type BalanceSheetResponse struct {
	AsOf        string                     `json:"asOf"`
	CompanyID   string                     `json:"companyID,omitempty"`
	Assets      domain.BalanceSheetSection `json:"assets"`
	Liabilities domain.BalanceSheetSection `json:"liabilities"`
	Equity      domain.BalanceSheetSection `json:"equity"`
	Summary     struct {
		TotalAssets               decimal.Decimal `json:"totalAssets"`
		TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
		TotalEquity               decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	} `json:"summary"`
	IsBalanced bool            `json:"isBalanced"`
	Difference decimal.Decimal `json:"difference"`
}

// ToBalanceSheetResponse converts a domain balance sheet report.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		AsOf:        report.AsOf.Format("2006-01-02"),
		CompanyID:   report.CompanyID,
		Assets:      report.Assets,
		Liabilities: report.Liabilities,
		Equity:      report.Equity,
		IsBalanced:  report.IsBalanced,
		Difference:  report.Difference,
	}
	resp.Summary.TotalAssets = report.TotalAssets
	resp.Summary.TotalLiabilities = report.TotalLiabilities
	resp.Summary.TotalEquity = report.TotalEquity
	resp.Summary.TotalLiabilitiesAndEquity = report.TotalLiabilitiesAndEquity
	return resp
}

// ProfitAndLossResponse is the API representation of a company P&L.
type ProfitAndLossResponse struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	CompanyID string              `json:"companyID,omitempty"`
	Income    []domain.PLCategory `json:"income"`
	Expenses  []domain.PLCategory `json:"expenses"`
	Summary   struct {
		TotalIncome      decimal.Decimal `json:"totalIncome"`
		TotalIncomeTHB   decimal.Decimal `json:"totalIncomeTHB"`
		TotalExpenses    decimal.Decimal `json:"totalExpenses"`
		TotalExpensesTHB decimal.Decimal `json:"totalExpensesTHB"`
		NetProfitTHB     decimal.Decimal `json:"netProfitTHB"`
	} `json:"summary"`
	HasMultipleCurrencies bool `json:"hasMultipleCurrencies"`
}

// ToProfitAndLossResponse converts a domain P&L report.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	resp := ProfitAndLossResponse{
		From:                  report.From.Format("2006-01-02"),
		To:                    report.To.Format("2006-01-02"),
		CompanyID:             report.CompanyID,
		Income:                report.Income,
		Expenses:              report.Expenses,
		HasMultipleCurrencies: report.HasMultipleCurrencies,
	}
	resp.Summary.TotalIncome = report.TotalIncome
	resp.Summary.TotalIncomeTHB = report.TotalIncomeTHB
	resp.Summary.TotalExpenses = report.TotalExpenses
	resp.Summary.TotalExpensesTHB = report.TotalExpensesTHB
	resp.Summary.NetProfitTHB = report.NetProfitTHB
	return resp
}
