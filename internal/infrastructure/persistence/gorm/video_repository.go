package gorm

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/streamvault/catalog/internal/domain/pagination"
	"github.com/streamvault/catalog/internal/domain/video"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

// VideoRepository implements video.Gateway backed by GORM
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video with its reference sets
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	var model VideoModel
	model.FromDomain(v)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// Update persists an existing video, replacing its reference sets
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	var model VideoModel
	model.FromDomain(v)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Genres", "CastMembers").Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Delete(&VideoCategoryModel{}, "video_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Categories) > 0 {
			if err := tx.Create(&model.Categories).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&VideoGenreModel{}, "video_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Genres) > 0 {
			if err := tx.Create(&model.Genres).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&VideoCastMemberModel{}, "video_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.CastMembers) > 0 {
			if err := tx.Create(&model.CastMembers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteByID removes a video; deleting an absent id is a no-op
func (r *VideoRepository) DeleteByID(ctx context.Context, id video.ID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VideoCategoryModel{}, "video_id = ?", id.String()).Error; err != nil {
			return err
		}
		if err := tx.Delete(&VideoGenreModel{}, "video_id = ?", id.String()).Error; err != nil {
			return err
		}
		if err := tx.Delete(&VideoCastMemberModel{}, "video_id = ?", id.String()).Error; err != nil {
			return err
		}
		return tx.Delete(&VideoModel{}, "id = ?", id.String()).Error
	})
}

// FindByID loads a video with its media slots and reference sets
func (r *VideoRepository) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	var model VideoModel
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Genres").
		Preload("CastMembers").
		First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Video", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of video previews filtered by terms and by
// category, genre and cast member references.
func (r *VideoRepository) FindAll(ctx context.Context, query video.SearchQuery) (pagination.Page[video.Preview], error) {
	page := pagination.Page[video.Preview]{
		CurrentPage: query.Page,
		PerPage:     perPage(query.PerPage),
	}

	tx := r.db.WithContext(ctx).Model(&VideoModel{})
	if query.Terms != "" {
		tx = tx.Where("lower(videos.title) LIKE ?", "%"+strings.ToLower(query.Terms)+"%")
	}
	if len(query.Categories) > 0 {
		values := make([]string, 0, len(query.Categories))
		for _, id := range query.Categories {
			values = append(values, id.String())
		}
		tx = tx.Joins("JOIN videos_categories vc ON vc.video_id = videos.id").
			Where("vc.category_id IN ?", values)
	}
	if len(query.Genres) > 0 {
		values := make([]string, 0, len(query.Genres))
		for _, id := range query.Genres {
			values = append(values, id.String())
		}
		tx = tx.Joins("JOIN videos_genres vg ON vg.video_id = videos.id").
			Where("vg.genre_id IN ?", values)
	}
	if len(query.CastMembers) > 0 {
		values := make([]string, 0, len(query.CastMembers))
		for _, id := range query.CastMembers {
			values = append(values, id.String())
		}
		tx = tx.Joins("JOIN videos_cast_members vm ON vm.video_id = videos.id").
			Where("vm.cast_member_id IN ?", values)
	}
	if err := tx.Session(&gorm.Session{}).Distinct("videos.id").Count(&page.Total).Error; err != nil {
		return page, err
	}

	var rows []struct {
		ID          string
		Title       string
		Description string
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
	err := tx.Distinct("videos.id", "videos.title", "videos.description", "videos.created_at", "videos.updated_at").
		Order(orderClause(query.SearchQuery, "title")).
		Offset(query.Page * page.PerPage).
		Limit(page.PerPage).
		Scan(&rows).Error
	if err != nil {
		return page, err
	}

	page.Items = make([]video.Preview, 0, len(rows))
	for _, row := range rows {
		page.Items = append(page.Items, video.Preview{
			ID:          video.IDFrom(row.ID),
			Title:       row.Title,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return page, nil
}
