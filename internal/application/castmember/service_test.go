package castmember_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	castmemberapp "github.com/streamvault/catalog/internal/application/castmember"
	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/pagination"
	"github.com/streamvault/catalog/internal/domain/validation"
	apperrors "github.com/streamvault/catalog/pkg/errors"
	"github.com/streamvault/catalog/pkg/logger"
)

// MockCastMemberGateway is a mock for the cast member gateway. Create
// and Update echo their argument when the expectation returns (nil, nil).
type MockCastMemberGateway struct {
	mock.Mock
}

func (m *MockCastMemberGateway) Create(ctx context.Context, member *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil && args.Error(1) == nil {
		return member, nil
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) Update(ctx context.Context, member *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil && args.Error(1) == nil {
		return member, nil
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*castmember.CastMember], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*castmember.CastMember]), args.Error(1)
}

func (m *MockCastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]castmember.ID), args.Error(1)
}

type CastMemberServiceSuite struct {
	suite.Suite

	ctx     context.Context
	gateway *MockCastMemberGateway
	service *castmemberapp.Service
}

func (s *CastMemberServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.gateway = new(MockCastMemberGateway)
	s.service = castmemberapp.NewService(s.gateway, logger.NewNoop())
}

func (s *CastMemberServiceSuite) TearDownTest() {
	s.gateway.AssertExpectations(s.T())
}

func TestCastMemberServiceSuite(t *testing.T) {
	suite.Run(t, new(CastMemberServiceSuite))
}

func (s *CastMemberServiceSuite) TestCreate() {
	s.gateway.On("Create", s.ctx, mock.AnythingOfType("*castmember.CastMember")).Return(nil, nil)

	created, err := s.service.Create(s.ctx, castmemberapp.CreateCastMemberCommand{
		Name: "Mary Doe",
		Type: "ACTOR",
	})

	s.Require().NoError(err)
	s.Equal("Mary Doe", created.Name)
	s.Equal(castmember.TypeActor, created.Type)
}

func (s *CastMemberServiceSuite) TestCreateUnknownTypeFailsValidation() {
	_, err := s.service.Create(s.ctx, castmemberapp.CreateCastMemberCommand{
		Name: "Mary Doe",
		Type: "PRODUCER",
	})

	s.Require().Error(err)
	var notificationErr *validation.NotificationError
	s.Require().ErrorAs(err, &notificationErr)
	s.Equal("'type' should not be null", notificationErr.Errors()[0].Message)
	s.gateway.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *CastMemberServiceSuite) TestUpdate() {
	existing, err := castmember.NewCastMember("Mary De", castmember.TypeDirector)
	s.Require().NoError(err)

	s.gateway.On("FindByID", s.ctx, existing.ID).Return(existing, nil)
	s.gateway.On("Update", s.ctx, existing).Return(nil, nil)

	updated, err := s.service.Update(s.ctx, castmemberapp.UpdateCastMemberCommand{
		ID:   existing.ID.String(),
		Name: "Mary Doe",
		Type: "ACTOR",
	})

	s.Require().NoError(err)
	s.Equal("Mary Doe", updated.Name)
	s.Equal(castmember.TypeActor, updated.Type)
}

func (s *CastMemberServiceSuite) TestUpdateNotFound() {
	id := castmember.NewID()
	s.gateway.On("FindByID", s.ctx, id).Return(nil, apperrors.NotFound("CastMember", id.String()))

	_, err := s.service.Update(s.ctx, castmemberapp.UpdateCastMemberCommand{
		ID:   id.String(),
		Name: "Mary Doe",
		Type: "ACTOR",
	})

	s.Require().Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *CastMemberServiceSuite) TestDelete() {
	id := castmember.NewID()
	s.gateway.On("DeleteByID", s.ctx, id).Return(nil)

	s.Require().NoError(s.service.Delete(s.ctx, id.String()))
}
