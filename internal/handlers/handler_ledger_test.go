package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/dto"
	"github.com/elephantbook/eb-backend/internal/handlers"
	"github.com/elephantbook/eb-backend/internal/platform/config"
	"github.com/elephantbook/eb-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.AccountWithBalance, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) GetAccount(ctx context.Context, userID, accountID string) (*domain.AccountWithBalance, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.AccountWithBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.AccountWithBalance, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, userID string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) GetEntry(ctx context.Context, userID, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, userID string, params dto.ListLedgerParams) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}
func (m *MockLedgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Get(1).(*domain.LedgerEntry), args.Error(2)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserSvc     *MockUserService
	mockTokenSvc    *MockTokenService
	mockAccountSvc  *MockAccountService
	mockCategorySvc *MockCategoryService
	mockLedgerSvc   *MockLedgerService
	cfg             *config.Config
	userID          string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "eb-test",
		AuthRateLimit:     "100-S",
	}

	suite.mockUserSvc = new(MockUserService)
	suite.mockTokenSvc = new(MockTokenService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockCategorySvc = new(MockCategoryService)
	suite.mockLedgerSvc = new(MockLedgerService)

	container := &portssvc.ServiceContainer{
		User:     suite.mockUserSvc,
		Token:    suite.mockTokenSvc,
		Account:  suite.mockAccountSvc,
		Category: suite.mockCategorySvc,
		Ledger:   suite.mockLedgerSvc,
	}

	handlers.RegisterRoutes(suite.router, suite.cfg, container)

	suite.userID = uuid.NewString()
}

func (suite *LedgerHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateJWT(suite.userID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *LedgerHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Created() {
	entry := &domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       uuid.NewString(),
		CreatedBy:       suite.userID,
		Amount:          decimal.RequireFromString("-72.50"),
		TransactionDate: time.Now().UTC(),
		CreatedOn:       time.Now().UTC(),
	}
	suite.mockLedgerSvc.On("CreateEntry", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateLedgerEntryRequest")).Return(entry, nil).Once()

	body := map[string]any{
		"accountID":       entry.AccountID,
		"amount":          "-72.50",
		"transactionDate": entry.TransactionDate.Format(time.RFC3339),
	}
	w := suite.doJSON(http.MethodPost, "/api/v1/ledger", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Nil(resp.CategoryID)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ledger", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *LedgerHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockLedgerSvc.On("GetEntry", mock.Anything, suite.userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/ledger/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListEntries_FiltersBound() {
	accountID := uuid.NewString()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{{EntryID: uuid.NewString(), AccountID: accountID}}

	suite.mockLedgerSvc.On("ListEntries", mock.Anything, suite.userID, mock.MatchedBy(func(p dto.ListLedgerParams) bool {
		return p.AccountID == accountID && p.StartDate != nil && p.StartDate.Equal(start) && p.EndDate == nil
	})).Return(entries, nil).Once()

	url := "/api/v1/ledger?accountID=" + accountID + "&startDate=2024-01-01T00:00:00Z"
	w := suite.doJSON(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestTransfer_CreatedWithDebitFirst() {
	fromID := uuid.NewString()
	toID := uuid.NewString()
	debit := &domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: fromID,
		CreatedBy: suite.userID,
		Amount:    decimal.RequireFromString("-200.00"),
		Narration: "Transfer to Savings",
	}
	credit := &domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: toID,
		CreatedBy: suite.userID,
		Amount:    decimal.RequireFromString("200.00"),
		Narration: "Transfer from Checking",
	}
	suite.mockLedgerSvc.On("Transfer", mock.Anything, suite.userID, mock.AnythingOfType("dto.TransferRequest")).Return(debit, credit, nil).Once()

	body := map[string]any{
		"fromAccountID":   fromID,
		"toAccountID":     toID,
		"amount":          "200.00",
		"transactionDate": time.Now().UTC().Format(time.RFC3339),
	}
	w := suite.doJSON(http.MethodPost, "/api/v1/transfer", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp []dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(debit.EntryID, resp[0].EntryID)
	suite.Equal(credit.EntryID, resp[1].EntryID)
	suite.True(resp[0].Amount.Add(resp[1].Amount).IsZero())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestTransfer_SameAccountBadRequest() {
	accountID := uuid.NewString()
	suite.mockLedgerSvc.On("Transfer", mock.Anything, suite.userID, mock.AnythingOfType("dto.TransferRequest")).
		Return(nil, nil, apperrors.ErrValidation).Once()

	body := map[string]any{
		"fromAccountID":   accountID,
		"toAccountID":     accountID,
		"amount":          "50.00",
		"transactionDate": time.Now().UTC().Format(time.RFC3339),
	}
	w := suite.doJSON(http.MethodPost, "/api/v1/transfer", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_NoContent() {
	entryID := uuid.NewString()
	suite.mockLedgerSvc.On("DeleteEntry", mock.Anything, suite.userID, entryID).Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/ledger/"+entryID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
