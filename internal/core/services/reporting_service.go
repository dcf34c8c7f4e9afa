package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
)

// canonicalSubtypeOrder fixes the presentation order of balance sheet
// subtype groups within each section. Subtypes not listed here sort
// alphabetically after the canonical ones.
var canonicalSubtypeOrder = map[domain.AccountType][]string{
	domain.Asset:     {"Current Asset", "Non-Current Asset"},
	domain.Liability: {"Current Liability", "Non-Current Liability"},
	domain.Equity:    {"Share Capital", "Retained Earnings"},
}

// reportingService generates trial balance and balance sheet statements
// from posted entry activity.
type reportingService struct {
	BaseService
	entryRepo portsrepo.JournalEntryRepository
	registry  portsrepo.AccountRegistry
}

// NewReportingService creates a new reporting service.
func NewReportingService(entryRepo portsrepo.JournalEntryRepository, registry portsrepo.AccountRegistry) portssvc.ReportingSvcFacade {
	return &reportingService{
		entryRepo: entryRepo,
		registry:  registry,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// accountNet is an account's signed net balance after normal-balance netting.
type accountNet struct {
	account domain.Account
	net     decimal.Decimal
}

// netBalances aggregates posted activity up to asOf into per-account signed
// nets, resolving each account through the registry. Accounts netting to
// zero (within tolerance) are dropped.
func (s *reportingService) netBalances(ctx context.Context, companyID string, asOf time.Time) ([]accountNet, error) {
	activity, err := s.entryRepo.PostedAccountActivity(ctx, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posted account activity: %w", err)
	}

	nets := make([]accountNet, 0, len(activity))
	for _, act := range activity {
		account, err := s.registry.LookupAccount(ctx, act.AccountCode)
		if err != nil {
			return nil, fmt.Errorf("account %s present in ledger but missing from chart: %w", act.AccountCode, err)
		}

		net := domain.SignedNet(account.NormalBalance, act.TotalDebits, act.TotalCredits)
		if net.Abs().LessThan(domain.BalanceTolerance) {
			continue
		}
		nets = append(nets, accountNet{account: *account, net: net})
	}

	sort.Slice(nets, func(i, j int) bool {
		return nets[i].account.Code < nets[j].account.Code
	})
	return nets, nil
}

// TrialBalance lists every account's net balance as of a date. A normally-
// debit account netting negative lands in the credit column (and vice versa)
// so anomalies such as contra-account balances stay visible. An empty period
// yields a zero-row report, not an error.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time, companyID string) (*domain.TrialBalanceReport, error) {
	nets, err := s.netBalances(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		AsOf:         asOf,
		CompanyID:    companyID,
		Rows:         make([]domain.TrialBalanceRow, 0, len(nets)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, n := range nets {
		row := domain.TrialBalanceRow{
			AccountCode:   n.account.Code,
			AccountName:   n.account.Name,
			AccountType:   n.account.AccountType,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}

		debitSide := n.account.NormalBalance == domain.DebitNormal
		if n.net.IsNegative() {
			// Anomalous balance: flip to the opposite column.
			debitSide = !debitSide
		}
		if debitSide {
			row.DebitBalance = n.net.Abs()
		} else {
			row.CreditBalance = n.net.Abs()
		}

		report.Rows = append(report.Rows, row)
		report.TotalDebits = report.TotalDebits.Add(row.DebitBalance)
		report.TotalCredits = report.TotalCredits.Add(row.CreditBalance)
	}

	report.Difference = report.TotalDebits.Sub(report.TotalCredits)
	report.IsBalanced = report.Difference.Abs().LessThan(domain.BalanceTolerance)

	if !report.IsBalanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("difference", report.Difference.String()),
			slog.String("as_of", asOf.Format("2006-01-02")))
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("as_of", asOf.Format("2006-01-02")),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// BalanceSheet sections net balances into Assets, Liabilities and Equity
// with subtype grouping under the canonical ordering. Imbalance between
// assets and liabilities plus equity is reported, never thrown.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time, companyID string) (*domain.BalanceSheetReport, error) {
	nets, err := s.netBalances(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:        asOf,
		CompanyID:   companyID,
		Assets:      s.buildSection(domain.Asset, nets),
		Liabilities: s.buildSection(domain.Liability, nets),
		Equity:      s.buildSection(domain.Equity, nets),
	}

	report.TotalAssets = report.Assets.Total
	report.TotalLiabilities = report.Liabilities.Total
	report.TotalEquity = report.Equity.Total
	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilitiesAndEquity)
	report.IsBalanced = report.Difference.Abs().LessThan(domain.BalanceTolerance)

	if !report.IsBalanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("difference", report.Difference.String()),
			slog.String("as_of", asOf.Format("2006-01-02")))
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("as_of", asOf.Format("2006-01-02")))
	return report, nil
}

// buildSection collects one account type's nets into subtype groups under
// the canonical ordering. Line amounts assume conversion to the reporting
// currency happened when the underlying lines were recorded.
func (s *reportingService) buildSection(accountType domain.AccountType, nets []accountNet) domain.BalanceSheetSection {
	section := domain.BalanceSheetSection{
		AccountType: accountType,
		Groups:      []domain.BalanceSheetGroup{},
		Total:       decimal.Zero,
	}

	bySubtype := make(map[string][]domain.BalanceSheetLine)
	for _, n := range nets {
		if n.account.AccountType != accountType {
			continue
		}

		currency := n.account.CurrencyCode
		if currency == "" {
			currency = domain.ReportingCurrency
		}
		bySubtype[n.account.SubType] = append(bySubtype[n.account.SubType], domain.BalanceSheetLine{
			AccountCode:  n.account.Code,
			AccountName:  n.account.Name,
			CurrencyCode: currency,
			Amount:       n.net,
			AmountTHB:    n.net,
		})
	}

	for _, subType := range orderedSubtypes(accountType, bySubtype) {
		lines := bySubtype[subType]
		group := domain.BalanceSheetGroup{
			SubType: subType,
			Lines:   lines,
			Total:   decimal.Zero,
		}
		for _, line := range lines {
			group.Total = group.Total.Add(line.AmountTHB)
		}
		section.Groups = append(section.Groups, group)
		section.Total = section.Total.Add(group.Total)
	}
	return section
}

// orderedSubtypes returns the subtype keys present in the section, canonical
// order first, then any remainder alphabetically.
func orderedSubtypes(accountType domain.AccountType, bySubtype map[string][]domain.BalanceSheetLine) []string {
	seen := make(map[string]bool, len(bySubtype))
	ordered := make([]string, 0, len(bySubtype))

	for _, subType := range canonicalSubtypeOrder[accountType] {
		if _, ok := bySubtype[subType]; ok {
			ordered = append(ordered, subType)
			seen[subType] = true
		}
	}

	rest := make([]string, 0, len(bySubtype))
	for subType := range bySubtype {
		if !seen[subType] {
			rest = append(rest, subType)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
