package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/pagination"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

// CastMemberRepository implements castmember.Gateway backed by GORM
type CastMemberRepository struct {
	db *gorm.DB
}

// NewCastMemberRepository creates a new cast member repository
func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

// Create persists a new cast member
func (r *CastMemberRepository) Create(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	var model CastMemberModel
	model.FromDomain(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists every field of an existing cast member
func (r *CastMemberRepository) Update(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	var model CastMemberModel
	model.FromDomain(m)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes a cast member; deleting an absent id is a no-op
func (r *CastMemberRepository) DeleteByID(ctx context.Context, id castmember.ID) error {
	return r.db.WithContext(ctx).Delete(&CastMemberModel{}, "id = ?", id.String()).Error
}

// FindByID loads a cast member by id
func (r *CastMemberRepository) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	var model CastMemberModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("CastMember", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of cast members filtered by terms
func (r *CastMemberRepository) FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*castmember.CastMember], error) {
	page := pagination.Page[*castmember.CastMember]{
		CurrentPage: query.Page,
		PerPage:     perPage(query.PerPage),
	}

	tx := r.db.WithContext(ctx).Model(&CastMemberModel{})
	if query.Terms != "" {
		tx = tx.Where("lower(name) LIKE ?", "%"+strings.ToLower(query.Terms)+"%")
	}

	if err := tx.Count(&page.Total).Error; err != nil {
		return page, err
	}

	var models []CastMemberModel
	err := tx.Order(orderClause(query, "name")).
		Offset(query.Page * page.PerPage).
		Limit(page.PerPage).
		Find(&models).Error
	if err != nil {
		return page, err
	}

	page.Items = make([]*castmember.CastMember, 0, len(models))
	for i := range models {
		page.Items = append(page.Items, models[i].ToDomain())
	}
	return page, nil
}

// ExistsByIDs returns the subset of ids present in storage
func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&CastMemberModel{}).
		Where("id IN ?", values).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	out := make([]castmember.ID, 0, len(found))
	for _, id := range found {
		out = append(out, castmember.IDFrom(id))
	}
	return out, nil
}
