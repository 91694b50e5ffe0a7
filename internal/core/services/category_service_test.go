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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryForUser(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesForUser(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategoryAndUnlinkEntries(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
	userID   string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		CategoryType: domain.Expense,
		Name:         "Groceries",
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.CategoryID)
	suite.Equal(suite.userID, created.UserID)
	suite.Equal(domain.Expense, created.CategoryType)
	suite.Equal("Groceries", created.Name)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		CategoryType: domain.CategoryType("savings"),
		Name:         "Rainy day",
	}

	created, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_TypeChange() {
	ctx := context.Background()
	category := &domain.Category{
		CategoryID:   uuid.NewString(),
		UserID:       suite.userID,
		CategoryType: domain.Expense,
		Name:         "Refunds",
	}
	newType := domain.Income
	req := dto.UpdateCategoryRequest{CategoryType: &newType}

	suite.mockRepo.On("FindCategoryForUser", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID == category.CategoryID && c.CategoryType == domain.Income && c.Name == "Refunds"
	})).Return(nil).Once()

	got, err := suite.service.UpdateCategory(ctx, suite.userID, category.CategoryID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Income, got.CategoryType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_InvalidType() {
	ctx := context.Background()
	category := &domain.Category{
		CategoryID:   uuid.NewString(),
		UserID:       suite.userID,
		CategoryType: domain.Expense,
		Name:         "Groceries",
	}
	badType := domain.CategoryType("transfer")
	req := dto.UpdateCategoryRequest{CategoryType: &badType}

	suite.mockRepo.On("FindCategoryForUser", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()

	got, err := suite.service.UpdateCategory(ctx, suite.userID, category.CategoryID, req)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_UnlinksEntries() {
	ctx := context.Background()
	category := &domain.Category{CategoryID: uuid.NewString(), UserID: suite.userID}

	suite.mockRepo.On("FindCategoryForUser", ctx, suite.userID, category.CategoryID).Return(category, nil).Once()
	suite.mockRepo.On("DeleteCategoryAndUnlinkEntries", ctx, category.CategoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, category.CategoryID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotOwned() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockRepo.On("FindCategoryForUser", ctx, suite.userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategoryAndUnlinkEntries")
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
