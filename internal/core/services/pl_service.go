package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
)

var oneHundred = decimal.NewFromInt(100)

// plService builds company and project income statements from external
// source documents. Income documents contribute only once their service
// period has concluded; undated revenue is conservatively excluded.
type plService struct {
	BaseService
	docs  portssvc.DocumentSource
	rates portssvc.RateProvider
	now   func() time.Time
}

// NewPLService creates a new P&L service. now is injectable for tests; nil
// defaults to time.Now.
func NewPLService(docs portssvc.DocumentSource, rates portssvc.RateProvider, now func() time.Time) portssvc.PLSvcFacade {
	if now == nil {
		now = time.Now
	}
	return &plService{docs: docs, rates: rates, now: now}
}

var _ portssvc.PLSvcFacade = (*plService)(nil)

// convert resolves a document's reporting-currency amount. Preference
// order: rate stored on the document at creation, then the exchange-rate
// service, then the hardcoded legacy table. The chosen path is reported so
// legacy-shim conversions stay distinguishable.
func (s *plService) convert(ctx context.Context, doc domain.SourceDocument) (decimal.Decimal, domain.RateSource, error) {
	if doc.CurrencyCode == "" || doc.CurrencyCode == domain.ReportingCurrency {
		return doc.Amount, domain.RateSourceNone, nil
	}

	if doc.FxRate != nil && doc.FxRate.IsPositive() {
		return doc.Amount.Mul(*doc.FxRate), domain.RateSourceDocument, nil
	}

	if s.rates != nil {
		rate, err := s.rates.GetRate(ctx, doc.CurrencyCode, doc.Date)
		if err == nil {
			return doc.Amount.Mul(rate), domain.RateSourceService, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Rate service failure is an availability problem, not a data
			// gap; fall through to the shim but note the failure.
			s.LogWarn(ctx, "Rate service lookup failed, trying legacy table",
				slog.String("currency", doc.CurrencyCode),
				slog.String("error", err.Error()))
		}
	}

	if rate, ok := legacyTHBRate(doc.CurrencyCode); ok {
		s.LogWarn(ctx, "Converted with legacy fallback rate table",
			slog.String("document_id", doc.DocumentID),
			slog.String("currency", doc.CurrencyCode))
		return doc.Amount.Mul(rate), domain.RateSourceLegacyFallback, nil
	}

	return decimal.Zero, domain.RateSourceNone, fmt.Errorf("no conversion rate for %s on %s", doc.CurrencyCode, doc.Date.Format("2006-01-02"))
}

// includeInPL applies the recognition gate: expense documents always count;
// revenue-bearing documents count only once their service period has
// concluded (date-only comparison, absent dates excluded).
func (s *plService) includeInPL(doc domain.SourceDocument) bool {
	if !doc.Kind.IsIncome() {
		return true
	}
	return domain.IsServiceCompleted(doc.ServiceEndDate, s.now())
}

// signedAmount returns the document amount with credit notes negated.
func signedAmount(doc domain.SourceDocument) decimal.Decimal {
	if doc.Kind == domain.KindCreditNote {
		return doc.Amount.Neg()
	}
	return doc.Amount
}

// ProfitAndLoss builds the company-level statement for a period. A document
// source failure degrades to an empty period rather than failing the report.
func (s *plService) ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	report := &domain.ProfitAndLossReport{
		From:             from,
		To:               to,
		CompanyID:        companyID,
		Income:           []domain.PLCategory{},
		Expenses:         []domain.PLCategory{},
		TotalIncome:      decimal.Zero,
		TotalIncomeTHB:   decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalExpensesTHB: decimal.Zero,
		NetProfitTHB:     decimal.Zero,
	}

	docs, err := s.docs.FetchByDateRange(ctx, companyID, from, to)
	if err != nil {
		s.LogWarn(ctx, "Document source unavailable, reporting empty period",
			slog.String("company_id", companyID),
			slog.String("error", err.Error()))
		return report, nil
	}

	incomeByCategory := make(map[string]*domain.PLCategory)
	expenseByCategory := make(map[string]*domain.PLCategory)
	currencies := make(map[string]bool)

	for _, doc := range docs {
		if !s.includeInPL(doc) {
			continue
		}

		thb, source, err := s.convert(ctx, doc)
		if err != nil {
			s.LogWarn(ctx, "Excluding document without conversion rate",
				slog.String("document_id", doc.DocumentID),
				slog.String("error", err.Error()))
			continue
		}

		amount := signedAmount(doc)
		if doc.Kind == domain.KindCreditNote {
			thb = thb.Neg()
		}

		item := domain.PLItem{
			DocumentID:     doc.DocumentID,
			DocumentNumber: doc.DocumentNumber,
			Date:           doc.Date,
			Amount:         amount,
			CurrencyCode:   doc.CurrencyCode,
			AmountTHB:      thb,
			RateSource:     source,
		}

		target := expenseByCategory
		if doc.Kind.IsIncome() {
			target = incomeByCategory
		}
		cat, ok := target[doc.Category]
		if !ok {
			cat = &domain.PLCategory{Category: doc.Category, Total: decimal.Zero, TotalTHB: decimal.Zero}
			target[doc.Category] = cat
		}
		cat.Items = append(cat.Items, item)
		cat.Total = cat.Total.Add(amount)
		cat.TotalTHB = cat.TotalTHB.Add(thb)

		currency := doc.CurrencyCode
		if currency == "" {
			currency = domain.ReportingCurrency
		}
		currencies[currency] = true
	}

	report.Income = sortedCategories(incomeByCategory)
	report.Expenses = sortedCategories(expenseByCategory)
	for _, cat := range report.Income {
		report.TotalIncome = report.TotalIncome.Add(cat.Total)
		report.TotalIncomeTHB = report.TotalIncomeTHB.Add(cat.TotalTHB)
	}
	for _, cat := range report.Expenses {
		report.TotalExpenses = report.TotalExpenses.Add(cat.Total)
		report.TotalExpensesTHB = report.TotalExpensesTHB.Add(cat.TotalTHB)
	}
	report.NetProfitTHB = report.TotalIncomeTHB.Sub(report.TotalExpensesTHB)
	report.HasMultipleCurrencies = len(currencies) > 1

	s.LogInfo(ctx, "Profit and loss generated",
		slog.String("company_id", companyID),
		slog.Int("income_categories", len(report.Income)),
		slog.Int("expense_categories", len(report.Expenses)))
	return report, nil
}

// ProjectPL buckets one project's documents into the twelve fiscal months
// (November through October) of fiscalYear, formatted "YYYY-YYYY".
func (s *plService) ProjectPL(ctx context.Context, projectID string, fiscalYear string, managementFeePct decimal.Decimal) (*domain.ProjectPLReport, error) {
	startYear, err := domain.ParseFiscalYear(fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	keys := domain.FiscalMonthKeys(startYear)
	bucketIndex := make(map[string]int, len(keys))
	report := &domain.ProjectPLReport{
		ProjectID:          projectID,
		FiscalYear:         fiscalYear,
		ManagementFeePct:   managementFeePct,
		Months:             make([]domain.ProjectMonthBucket, len(keys)),
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		TotalManagementFee: decimal.Zero,
		TotalProfit:        decimal.Zero,
	}
	for i, key := range keys {
		bucketIndex[key] = i
		report.Months[i] = domain.ProjectMonthBucket{
			Month:         key,
			Income:        decimal.Zero,
			Expense:       decimal.Zero,
			ManagementFee: decimal.Zero,
			Profit:        decimal.Zero,
		}
	}

	from := time.Date(startYear, time.November, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(startYear+1, time.October, 31, 0, 0, 0, 0, time.UTC)

	docs, err := s.docs.FetchByDateRange(ctx, "", from, to)
	if err != nil {
		s.LogWarn(ctx, "Document source unavailable, reporting empty fiscal year",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		return report, nil
	}

	for _, doc := range docs {
		if doc.ProjectID != projectID || !s.includeInPL(doc) {
			continue
		}
		idx, ok := bucketIndex[domain.MonthKey(doc.Date)]
		if !ok {
			continue
		}

		thb, source, err := s.convert(ctx, doc)
		if err != nil {
			s.LogWarn(ctx, "Excluding document without conversion rate",
				slog.String("document_id", doc.DocumentID),
				slog.String("error", err.Error()))
			continue
		}
		if source == domain.RateSourceLegacyFallback {
			report.UsedLegacyRateTable = true
		}
		if doc.Kind == domain.KindCreditNote {
			thb = thb.Neg()
		}

		if doc.Kind.IsIncome() {
			report.Months[idx].Income = report.Months[idx].Income.Add(thb)
		} else {
			report.Months[idx].Expense = report.Months[idx].Expense.Add(thb)
		}
	}

	for i := range report.Months {
		bucket := &report.Months[i]
		bucket.ManagementFee = bucket.Income.Mul(managementFeePct).Div(oneHundred)
		bucket.Profit = bucket.Income.Sub(bucket.ManagementFee).Sub(bucket.Expense)

		report.TotalIncome = report.TotalIncome.Add(bucket.Income)
		report.TotalExpense = report.TotalExpense.Add(bucket.Expense)
		report.TotalManagementFee = report.TotalManagementFee.Add(bucket.ManagementFee)
		report.TotalProfit = report.TotalProfit.Add(bucket.Profit)
	}

	s.LogInfo(ctx, "Project P&L generated",
		slog.String("project_id", projectID),
		slog.String("fiscal_year", fiscalYear))
	return report, nil
}

// sortedCategories flattens a category map in alphabetical order.
func sortedCategories(byCategory map[string]*domain.PLCategory) []domain.PLCategory {
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]domain.PLCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, *byCategory[name])
	}
	return categories
}
