package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
	"github.com/faraway-yachting/charter-ledger/internal/handlers"
	"github.com/faraway-yachting/charter-ledger/internal/middleware"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalService) ImportPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) BuildPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockJournalService
	jwtSecret          string
}

func (suite *JournalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockJournalService = new(MockJournalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterJournalRoutes(v1, suite.mockJournalService)
}

func (suite *JournalHandlerTestSuite) authedRequest(method, url string, body any, userID string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateJournalEntryRequest{
		CompanyID:   "acme",
		Date:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: "Charter deposit INV-2025-031",
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: "1000", LineType: domain.Debit, Amount: decimal.NewFromInt(100000)},
			{AccountCode: "2100", LineType: domain.Credit, Amount: decimal.NewFromInt(100000)},
		},
	}
	created := &domain.JournalEntry{
		EntryID:         uuid.NewString(),
		CompanyID:       "acme",
		Status:          domain.Draft,
		ReferenceNumber: "JE-2025-007",
		TotalDebit:      decimal.NewFromInt(100000),
		TotalCredit:     decimal.NewFromInt(100000),
	}

	suite.mockJournalService.On("CreateEntry",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.CreateJournalEntryRequest"),
		userID,
	).Return(created, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/journal-entries/", reqBody, userID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EntryID, resp.EntryID)
	suite.Equal("JE-2025-007", resp.ReferenceNumber)
	suite.Equal(domain.Draft, resp.Status)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_ValidationErrorIs400() {
	userID := uuid.NewString()
	reqBody := dto.CreateJournalEntryRequest{
		CompanyID:   "acme",
		Date:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: "Bad account",
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: "9999", LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountCode: "2100", LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: unknown account code 9999", apperrors.ErrValidation)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/journal-entries/", reqBody, userID))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFoundIs404() {
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockJournalService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/journal-entries/"+entryID, nil, userID))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostEntry_AlreadyPostedIs409() {
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockJournalService.On("PostEntry", mock.Anything, entryID, userID).
		Return(nil, fmt.Errorf("%w: entry %s is already posted", apperrors.ErrState, entryID)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil, userID))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostEntry_UnbalancedIs400() {
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockJournalService.On("PostEntry", mock.Anything, entryID, userID).
		Return(nil, fmt.Errorf("%w: entry is not balanced", apperrors.ErrValidation)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil, userID))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JournalHandlerTestSuite) TestMissingTokenIs401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journal-entries/?companyId=acme", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
