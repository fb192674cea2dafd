package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	categoryapp "github.com/streamvault/catalog/internal/application/category"
	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/pagination"
	"github.com/streamvault/catalog/internal/domain/validation"
	apperrors "github.com/streamvault/catalog/pkg/errors"
	"github.com/streamvault/catalog/pkg/logger"
)

// MockCategoryGateway is a mock for the category gateway. Create and
// Update echo their argument when the expectation returns (nil, nil).
type MockCategoryGateway struct {
	mock.Mock
}

func (m *MockCategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil && args.Error(1) == nil {
		return c, nil
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil && args.Error(1) == nil {
		return c, nil
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*category.Category], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*category.Category]), args.Error(1)
}

func (m *MockCategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.ID), args.Error(1)
}

type CategoryServiceSuite struct {
	suite.Suite

	ctx     context.Context
	gateway *MockCategoryGateway
	service *categoryapp.Service
}

func (s *CategoryServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.gateway = new(MockCategoryGateway)
	s.service = categoryapp.NewService(s.gateway, logger.NewNoop())
}

func (s *CategoryServiceSuite) TearDownTest() {
	s.gateway.AssertExpectations(s.T())
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestCreate() {
	s.gateway.On("Create", s.ctx, mock.AnythingOfType("*category.Category")).Return(nil, nil)

	created, err := s.service.Create(s.ctx, categoryapp.CreateCategoryCommand{
		Name:        "Movies",
		Description: "Feature films",
		Active:      true,
	})

	s.Require().NoError(err)
	s.Equal("Movies", created.Name)
	s.True(created.Active)
	s.Nil(created.DeletedAt)
}

func (s *CategoryServiceSuite) TestCreateInvalidNameSkipsGateway() {
	_, err := s.service.Create(s.ctx, categoryapp.CreateCategoryCommand{
		Name:   "",
		Active: true,
	})

	s.Require().Error(err)
	var notificationErr *validation.NotificationError
	s.Require().ErrorAs(err, &notificationErr)
	s.Equal("Failed to create Aggregate Category", notificationErr.Message)
	s.gateway.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *CategoryServiceSuite) TestUpdate() {
	existing, err := category.NewCategory("Moveis", "", true)
	s.Require().NoError(err)

	s.gateway.On("FindByID", s.ctx, existing.ID).Return(existing, nil)
	s.gateway.On("Update", s.ctx, existing).Return(nil, nil)

	updated, err := s.service.Update(s.ctx, categoryapp.UpdateCategoryCommand{
		ID:          existing.ID.String(),
		Name:        "Movies",
		Description: "Feature films",
		Active:      true,
	})

	s.Require().NoError(err)
	s.Equal("Movies", updated.Name)
	s.Equal("Feature films", updated.Description)
}

func (s *CategoryServiceSuite) TestUpdateNotFound() {
	id := category.NewID()
	s.gateway.On("FindByID", s.ctx, id).Return(nil, apperrors.NotFound("Category", id.String()))

	_, err := s.service.Update(s.ctx, categoryapp.UpdateCategoryCommand{
		ID:   id.String(),
		Name: "Movies",
	})

	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *CategoryServiceSuite) TestUpdateInvalidNameSkipsPersistence() {
	existing, err := category.NewCategory("Movies", "", true)
	s.Require().NoError(err)

	s.gateway.On("FindByID", s.ctx, existing.ID).Return(existing, nil)

	_, err = s.service.Update(s.ctx, categoryapp.UpdateCategoryCommand{
		ID:     existing.ID.String(),
		Name:   "   ",
		Active: true,
	})

	s.Require().Error(err)
	s.gateway.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CategoryServiceSuite) TestDelete() {
	id := category.NewID()
	s.gateway.On("DeleteByID", s.ctx, id).Return(nil)

	err := s.service.Delete(s.ctx, id.String())

	s.Require().NoError(err)
}

func (s *CategoryServiceSuite) TestList() {
	page := pagination.Page[*category.Category]{CurrentPage: 0, PerPage: 10, Total: 0}
	query := pagination.SearchQuery{Page: 0, PerPage: 10}
	s.gateway.On("FindAll", s.ctx, query).Return(page, nil)

	result, err := s.service.List(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(page, result)
}

func (s *CategoryServiceSuite) TestGetPropagatesGatewayError() {
	id := category.NewID()
	boom := errors.New("connection refused")
	s.gateway.On("FindByID", s.ctx, id).Return(nil, boom)

	_, err := s.service.Get(s.ctx, id.String())

	s.Require().Error(err)
	s.ErrorIs(err, boom)
}
