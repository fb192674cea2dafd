package castmember

import (
	"context"

	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Service orchestrates the cast member use cases.
type Service struct {
	gateway castmember.Gateway
	logger  *zap.Logger
}

// NewService creates a cast member service.
func NewService(gateway castmember.Gateway, logger *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// Create validates and persists a new cast member.
func (s *Service) Create(ctx context.Context, cmd CreateCastMemberCommand) (*castmember.CastMember, error) {
	m, err := castmember.NewCastMember(cmd.Name, castmember.TypeOf(cmd.Type))
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.Create(ctx, m)
	if err != nil {
		s.logger.Error("failed to create cast member", zap.Error(err))
		return nil, err
	}

	s.logger.Info("cast member created",
		zap.String("id", created.ID.String()),
		zap.String("name", created.Name))
	return created, nil
}

// Update loads, mutates and persists a cast member. A validation failure
// aborts before anything is stored.
func (s *Service) Update(ctx context.Context, cmd UpdateCastMemberCommand) (*castmember.CastMember, error) {
	m, err := s.gateway.FindByID(ctx, castmember.IDFrom(cmd.ID))
	if err != nil {
		return nil, err
	}

	if err := m.Update(cmd.Name, castmember.TypeOf(cmd.Type)); err != nil {
		return nil, err
	}

	updated, err := s.gateway.Update(ctx, m)
	if err != nil {
		s.logger.Error("failed to update cast member", zap.Error(err), zap.String("id", cmd.ID))
		return nil, err
	}
	return updated, nil
}

// Delete removes a cast member. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteByID(ctx, castmember.IDFrom(id))
}

// Get loads a cast member by id.
func (s *Service) Get(ctx context.Context, id string) (*castmember.CastMember, error) {
	return s.gateway.FindByID(ctx, castmember.IDFrom(id))
}

// List returns one page of cast members.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*castmember.CastMember], error) {
	return s.gateway.FindAll(ctx, query)
}
