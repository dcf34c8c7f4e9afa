package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// --- Mock JournalEntryRepository ---

type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepository = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) NextReferenceNumber(ctx context.Context, prefix string, year int) (int64, error) {
	args := m.Called(ctx, prefix, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalEntryRepository) PostedAccountActivity(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

// --- Mock AccountRegistry ---

type MockAccountRegistry struct {
	mock.Mock
}

var _ portsrepo.AccountRegistry = (*MockAccountRegistry)(nil)

func (m *MockAccountRegistry) LookupAccount(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRegistry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock RevenueRecognitionRepository ---

type MockRecognitionRepository struct {
	mock.Mock
}

var _ portsrepo.RevenueRecognitionRepository = (*MockRecognitionRepository)(nil)

func (m *MockRecognitionRepository) SaveRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecognitionRepository) FindRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error) {
	args := m.Called(ctx, recognitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueRecognition), args.Error(1)
}

func (m *MockRecognitionRepository) UpdateRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecognitionRepository) SaveRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error {
	args := m.Called(ctx, rec, entry)
	return args.Error(0)
}

func (m *MockRecognitionRepository) UpdateRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error {
	args := m.Called(ctx, rec, entry)
	return args.Error(0)
}

func (m *MockRecognitionRepository) ListRecognitionsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.RevenueRecognition, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueRecognition), args.Error(1)
}

func (m *MockRecognitionRepository) ListDueRecognitions(ctx context.Context, asOf time.Time) ([]domain.RevenueRecognition, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueRecognition), args.Error(1)
}

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepository = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindEffectiveRate(ctx context.Context, fromCode, toCode string, on time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode, on)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock DocumentSource ---

type MockDocumentSource struct {
	mock.Mock
}

var _ portssvc.DocumentSource = (*MockDocumentSource)(nil)

func (m *MockDocumentSource) FetchByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]domain.SourceDocument, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceDocument), args.Error(1)
}

// --- Mock RateProvider ---

type MockRateProvider struct {
	mock.Mock
}

var _ portssvc.RateProvider = (*MockRateProvider)(nil)

func (m *MockRateProvider) GetRate(ctx context.Context, fromCode string, on time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, on)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock JournalSvcFacade (as used by recognition and closing services) ---

type MockJournalSvc struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalSvc)(nil)

func (m *MockJournalSvc) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalSvc) ImportPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalSvc) BuildPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
