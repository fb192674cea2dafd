package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/pagination"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

// GenreRepository implements genre.Gateway backed by GORM
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create persists a new genre with its ordered category references
func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	var model GenreModel
	model.FromDomain(g)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// Update persists an existing genre, replacing its category references
func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	var model GenreModel
	model.FromDomain(g)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Delete(&GenreCategoryModel{}, "genre_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Categories) == 0 {
			return nil
		}
		return tx.Create(&model.Categories).Error
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// DeleteByID removes a genre; deleting an absent id is a no-op
func (r *GenreRepository) DeleteByID(ctx context.Context, id genre.ID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&GenreCategoryModel{}, "genre_id = ?", id.String()).Error; err != nil {
			return err
		}
		return tx.Delete(&GenreModel{}, "id = ?", id.String()).Error
	})
}

// FindByID loads a genre with its category references in insertion order
func (r *GenreRepository) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	var model GenreModel
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Genre", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of genres filtered by terms
func (r *GenreRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*genre.Genre], error) {
	page := pagination.Page[*genre.Genre]{
		CurrentPage: query.Page,
		PerPage:     perPage(query.PerPage),
	}

	tx := r.db.WithContext(ctx).Model(&GenreModel{})
	if query.Terms != "" {
		tx = tx.Where("lower(name) LIKE ?", "%"+strings.ToLower(query.Terms)+"%")
	}

	if err := tx.Count(&page.Total).Error; err != nil {
		return page, err
	}

	var models []GenreModel
	err := tx.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).
		Order(orderClause(query, "name")).
		Offset(query.Page * page.PerPage).
		Limit(page.PerPage).
		Find(&models).Error
	if err != nil {
		return page, err
	}

	page.Items = make([]*genre.Genre, 0, len(models))
	for i := range models {
		page.Items = append(page.Items, models[i].ToDomain())
	}
	return page, nil
}

// ExistsByIDs returns the subset of ids present in storage
func (r *GenreRepository) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&GenreModel{}).
		Where("id IN ?", values).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	out := make([]genre.ID, 0, len(found))
	for _, id := range found {
		out = append(out, genre.IDFrom(id))
	}
	return out, nil
}
