package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/core/services"
	"github.com/elephantbook/eb-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountForUser(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountCascade(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockLedgerRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: "bank",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(suite.userID, created.UserID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.AccountType, created.AccountType)
	suite.True(created.Balance.IsZero())
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	// No ledger read happens for a brand new account.
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SumAmountByAccount")
}

func (suite *AccountServiceTestSuite) TestGetAccount_IncludesDerivedBalance() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      suite.userID,
		Name:        "Checking",
		AccountType: "bank",
	}

	suite.mockAccountRepo.On("FindAccountForUser", ctx, suite.userID, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("SumAmountByAccount", ctx, account.AccountID).Return(decimal.RequireFromString("500.00"), nil).Once()

	got, err := suite.service.GetAccount(ctx, suite.userID, account.AccountID)

	suite.Require().NoError(err)
	suite.Equal("500.00", got.Balance.StringFixed(2))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_OtherUsersAccountIsNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountForUser", ctx, suite.userID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetAccount(ctx, suite.userID, accountID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SumAmountByAccount")
}

func (suite *AccountServiceTestSuite) TestListAccounts_BalancePerAccount() {
	ctx := context.Background()
	first := domain.Account{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Checking", AccountType: "bank"}
	second := domain.Account{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Wallet", AccountType: "cash"}

	suite.mockAccountRepo.On("ListAccountsForUser", ctx, suite.userID).Return([]domain.Account{first, second}, nil).Once()
	suite.mockLedgerRepo.On("SumAmountByAccount", ctx, first.AccountID).Return(decimal.RequireFromString("1250.75"), nil).Once()
	suite.mockLedgerRepo.On("SumAmountByAccount", ctx, second.AccountID).Return(decimal.Zero, nil).Once()

	got, err := suite.service.ListAccounts(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("1250.75", got[0].Balance.StringFixed(2))
	suite.True(got[1].Balance.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      suite.userID,
		Name:        "Checking",
		AccountType: "bank",
	}
	newName := "Joint Checking"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockAccountRepo.On("FindAccountForUser", ctx, suite.userID, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == account.AccountID && a.Name == newName && a.AccountType == "bank"
	})).Return(nil).Once()
	suite.mockLedgerRepo.On("SumAmountByAccount", ctx, account.AccountID).Return(decimal.Zero, nil).Once()

	got, err := suite.service.UpdateAccount(ctx, suite.userID, account.AccountID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, got.Name)
	suite.Equal("bank", got.AccountType)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_CascadesEntries() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: suite.userID}

	suite.mockAccountRepo.On("FindAccountForUser", ctx, suite.userID, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("DeleteAccountCascade", ctx, account.AccountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, account.AccountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotOwnedNeverDeletes() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountForUser", ctx, suite.userID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccountCascade")
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
