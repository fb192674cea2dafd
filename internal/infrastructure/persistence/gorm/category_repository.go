package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/pagination"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

// CategoryRepository implements category.Gateway backed by GORM
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	var model CategoryModel
	model.FromDomain(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists every field of an existing category
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	var model CategoryModel
	model.FromDomain(c)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes a category; deleting an absent id is a no-op
func (r *CategoryRepository) DeleteByID(ctx context.Context, id category.ID) error {
	return r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id.String()).Error
}

// FindByID loads a category by id
func (r *CategoryRepository) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of categories filtered by terms
func (r *CategoryRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*category.Category], error) {
	page := pagination.Page[*category.Category]{
		CurrentPage: query.Page,
		PerPage:     perPage(query.PerPage),
	}

	tx := r.db.WithContext(ctx).Model(&CategoryModel{})
	if query.Terms != "" {
		tx = tx.Where("lower(name) LIKE ?", "%"+strings.ToLower(query.Terms)+"%")
	}

	if err := tx.Count(&page.Total).Error; err != nil {
		return page, err
	}

	var models []CategoryModel
	err := tx.Order(orderClause(query, "name")).
		Offset(query.Page * page.PerPage).
		Limit(page.PerPage).
		Find(&models).Error
	if err != nil {
		return page, err
	}

	page.Items = make([]*category.Category, 0, len(models))
	for i := range models {
		page.Items = append(page.Items, models[i].ToDomain())
	}
	return page, nil
}

// ExistsByIDs returns the subset of ids present in storage
func (r *CategoryRepository) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&CategoryModel{}).
		Where("id IN ?", values).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	out := make([]category.ID, 0, len(found))
	for _, id := range found {
		out = append(out, category.IDFrom(id))
	}
	return out, nil
}
