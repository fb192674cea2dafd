package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Service orchestrates the category use cases.
type Service struct {
	gateway category.Gateway
	logger  *zap.Logger
}

// NewService creates a category service.
func NewService(gateway category.Gateway, logger *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// Create validates and persists a new category.
func (s *Service) Create(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	c, err := category.NewCategory(cmd.Name, cmd.Description, cmd.Active)
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.Create(ctx, c)
	if err != nil {
		s.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("id", created.ID.String()),
		zap.String("name", created.Name))
	return created, nil
}

// Update loads, mutates and persists a category. A validation failure
// aborts before anything is stored.
func (s *Service) Update(ctx context.Context, cmd UpdateCategoryCommand) (*category.Category, error) {
	c, err := s.gateway.FindByID(ctx, category.IDFrom(cmd.ID))
	if err != nil {
		return nil, err
	}

	if err := c.Update(cmd.Name, cmd.Description, cmd.Active); err != nil {
		return nil, err
	}

	updated, err := s.gateway.Update(ctx, c)
	if err != nil {
		s.logger.Error("failed to update category", zap.Error(err), zap.String("id", cmd.ID))
		return nil, err
	}
	return updated, nil
}

// Delete removes a category. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteByID(ctx, category.IDFrom(id))
}

// Get loads a category by id.
func (s *Service) Get(ctx context.Context, id string) (*category.Category, error) {
	return s.gateway.FindByID(ctx, category.IDFrom(id))
}

// List returns one page of categories.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*category.Category], error) {
	return s.gateway.FindAll(ctx, query)
}
