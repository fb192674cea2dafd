package genre

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/pagination"
	"github.com/streamvault/catalog/internal/domain/validation"
)

// Service orchestrates the genre use cases. Category references are
// checked for existence before anything is persisted.
type Service struct {
	genreGateway    genre.Gateway
	categoryGateway category.Gateway
	logger          *zap.Logger
}

// NewService creates a genre service.
func NewService(genreGateway genre.Gateway, categoryGateway category.Gateway, logger *zap.Logger) *Service {
	return &Service{
		genreGateway:    genreGateway,
		categoryGateway: categoryGateway,
		logger:          logger,
	}
}

// Create validates the referenced categories, builds the aggregate and
// persists it. Existence errors and field errors are reported together
// in one aggregated failure, existence first.
func (s *Service) Create(ctx context.Context, cmd CreateGenreCommand) (*genre.Genre, error) {
	categoryIDs := toCategoryIDs(cmd.Categories)

	notification := validation.NewNotification()
	if err := s.validateCategories(ctx, categoryIDs, notification); err != nil {
		return nil, err
	}

	g, err := genre.NewGenre(cmd.Name, cmd.Active)
	if err := mergeAggregateFailure(err, notification); err != nil {
		return nil, err
	}

	if notification.HasError() {
		return nil, validation.NewNotificationError("Could not create Aggregate Genre", notification)
	}

	g.AddCategories(categoryIDs)

	created, err := s.genreGateway.Create(ctx, g)
	if err != nil {
		s.logger.Error("failed to create genre", zap.Error(err))
		return nil, err
	}

	s.logger.Info("genre created",
		zap.String("id", created.ID.String()),
		zap.String("name", created.Name))
	return created, nil
}

// Update loads the genre, re-checks the referenced categories and
// applies the mutation. Any accumulated error aborts before persistence.
func (s *Service) Update(ctx context.Context, cmd UpdateGenreCommand) (*genre.Genre, error) {
	g, err := s.genreGateway.FindByID(ctx, genre.IDFrom(cmd.ID))
	if err != nil {
		return nil, err
	}

	categoryIDs := toCategoryIDs(cmd.Categories)

	notification := validation.NewNotification()
	if err := s.validateCategories(ctx, categoryIDs, notification); err != nil {
		return nil, err
	}

	if err := mergeAggregateFailure(g.Update(cmd.Name, cmd.Active, categoryIDs), notification); err != nil {
		return nil, err
	}

	if notification.HasError() {
		return nil, validation.NewNotificationError("Could not update Aggregate Genre", notification)
	}

	updated, err := s.genreGateway.Update(ctx, g)
	if err != nil {
		s.logger.Error("failed to update genre", zap.Error(err), zap.String("id", cmd.ID))
		return nil, err
	}
	return updated, nil
}

// Delete removes a genre. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.genreGateway.DeleteByID(ctx, genre.IDFrom(id))
}

// Get loads a genre by id.
func (s *Service) Get(ctx context.Context, id string) (*genre.Genre, error) {
	return s.genreGateway.FindByID(ctx, genre.IDFrom(id))
}

// List returns one page of genres.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*genre.Genre], error) {
	return s.genreGateway.FindAll(ctx, query)
}

func (s *Service) validateCategories(ctx context.Context, ids []category.ID, notification *validation.Notification) error {
	existence, err := validation.CheckExistence("categories", ids, func(ids []category.ID) ([]category.ID, error) {
		return s.categoryGateway.ExistsByIDs(ctx, ids)
	})
	if err != nil {
		return err
	}
	notification.Merge(existence)
	return nil
}

// mergeAggregateFailure folds a self-validation failure into the shared
// notification so it can be reported together with existence errors.
// Any other error kind is passed through.
func mergeAggregateFailure(err error, notification *validation.Notification) error {
	if err == nil {
		return nil
	}
	var notifErr *validation.NotificationError
	if errors.As(err, &notifErr) {
		notification.Merge(notifErr.Notification)
		return nil
	}
	return err
}

func toCategoryIDs(ids []string) []category.ID {
	out := make([]category.ID, 0, len(ids))
	for _, id := range ids {
		out = append(out, category.IDFrom(id))
	}
	return out
}
