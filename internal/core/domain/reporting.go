package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource records how an amount was converted to the reporting currency.
// Legacy-table conversions must stay distinguishable from rate-sourced ones
// so historical shim data can be found and backfilled.
type RateSource string

const (
	RateSourceDocument       RateSource = "DOCUMENT"        // rate stored on the document at creation
	RateSourceService        RateSource = "RATE_SERVICE"    // fetched from the exchange-rate service
	RateSourceLegacyFallback RateSource = "LEGACY_FALLBACK" // hardcoded migration-shim table
	RateSourceNone           RateSource = "NONE"            // amount already in reporting currency
)

// TrialBalanceRow is one account's net balance placed in the debit or credit
// column. A normally-debit account that nets negative appears in the credit
// column (and vice versa) so anomalies such as contra-account balances stay
// visible instead of being discarded.
type TrialBalanceRow struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalanceReport lists every account with a non-zero net balance as of a
// date. Imbalance is surfaced as data, never hidden or auto-corrected.
type TrialBalanceReport struct {
	AsOf         time.Time         `json:"asOf"`
	CompanyID    string            `json:"companyID,omitempty"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
	Difference   decimal.Decimal   `json:"difference"`
}

// BalanceSheetLine is one account's balance within a balance sheet subtype
// group, carried in both its original currency and the reporting currency.
// Conversion happened when the underlying lines were recorded; this report
// does not call a rate service.
type BalanceSheetLine struct {
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	AmountTHB    decimal.Decimal `json:"amountTHB"`
}

// BalanceSheetGroup groups lines under a subtype, e.g. "Current Asset".
type BalanceSheetGroup struct {
	SubType string             `json:"subType"`
	Lines   []BalanceSheetLine `json:"lines"`
	Total   decimal.Decimal    `json:"total"`
}

// BalanceSheetSection is one of the Assets/Liabilities/Equity sections.
type BalanceSheetSection struct {
	AccountType AccountType         `json:"accountType"`
	Groups      []BalanceSheetGroup `json:"groups"`
	Total       decimal.Decimal     `json:"total"`
}

// BalanceSheetReport sections net balances as of a date. IsBalanced compares
// assets against liabilities plus equity; a discrepancy is reported, not thrown.
type BalanceSheetReport struct {
	AsOf                      time.Time           `json:"asOf"`
	CompanyID                 string              `json:"companyID,omitempty"`
	Assets                    BalanceSheetSection `json:"assets"`
	Liabilities               BalanceSheetSection `json:"liabilities"`
	Equity                    BalanceSheetSection `json:"equity"`
	TotalAssets               decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal     `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal     `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal     `json:"totalLiabilitiesAndEquity"`
	IsBalanced                bool                `json:"isBalanced"`
	Difference                decimal.Decimal     `json:"difference"`
}

// PLItem is one document's contribution to a P&L category, with the
// reporting-currency amount and how its conversion was sourced.
type PLItem struct {
	DocumentID     string          `json:"documentID"`
	DocumentNumber string          `json:"documentNumber"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	AmountTHB      decimal.Decimal `json:"amountTHB"`
	RateSource     RateSource      `json:"rateSource"`
}

// PLCategory sums a category's items in original and reporting currency.
type PLCategory struct {
	Category string          `json:"category"`
	Items    []PLItem        `json:"items"`
	Total    decimal.Decimal `json:"total"`
	TotalTHB decimal.Decimal `json:"totalTHB"`
}

// ProfitAndLossReport is the company-level income statement. When documents
// in more than one currency contribute, HasMultipleCurrencies flags that the
// original-currency totals are not meaningful.
type ProfitAndLossReport struct {
	From                  time.Time       `json:"from"`
	To                    time.Time       `json:"to"`
	CompanyID             string          `json:"companyID,omitempty"`
	Income                []PLCategory    `json:"income"`
	Expenses              []PLCategory    `json:"expenses"`
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalIncomeTHB        decimal.Decimal `json:"totalIncomeTHB"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	TotalExpensesTHB      decimal.Decimal `json:"totalExpensesTHB"`
	NetProfitTHB          decimal.Decimal `json:"netProfitTHB"`
	HasMultipleCurrencies bool            `json:"hasMultipleCurrencies"`
}

// ProjectMonthBucket is one fiscal month of a project P&L, keyed "YYYY-MM".
type ProjectMonthBucket struct {
	Month         string          `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	ManagementFee decimal.Decimal `json:"managementFee"`
	Profit        decimal.Decimal `json:"profit"`
}

// ProjectPLReport buckets a project's included documents into the twelve
// fiscal months November through October. All amounts are reporting currency.
type ProjectPLReport struct {
	ProjectID           string               `json:"projectID"`
	FiscalYear          string               `json:"fiscalYear"`
	ManagementFeePct    decimal.Decimal      `json:"managementFeePercent"`
	Months              []ProjectMonthBucket `json:"months"`
	TotalIncome         decimal.Decimal      `json:"totalIncome"`
	TotalExpense        decimal.Decimal      `json:"totalExpense"`
	TotalManagementFee  decimal.Decimal      `json:"totalManagementFee"`
	TotalProfit         decimal.Decimal      `json:"totalProfit"`
	UsedLegacyRateTable bool                 `json:"usedLegacyRateTable"`
}

// AccountActivity is a per-account aggregation of posted journal lines,
// produced by the storage layer and netted by the reporting service.
type AccountActivity struct {
	AccountCode  string          `json:"accountCode"`
	CurrencyCode string          `json:"currencyCode"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
}
