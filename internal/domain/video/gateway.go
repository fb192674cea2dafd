package video

import (
	"context"
	"time"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Preview is the lightweight projection returned by video listings.
type Preview struct {
	ID          ID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchQuery extends the common paging parameters with reference
// filters.
type SearchQuery struct {
	pagination.SearchQuery
	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID
}

// Gateway abstracts video persistence.
type Gateway interface {
	Create(ctx context.Context, v *Video) (*Video, error)
	Update(ctx context.Context, v *Video) (*Video, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Video, error)
	FindAll(ctx context.Context, query SearchQuery) (pagination.Page[Preview], error)
}

// MediaResourceGateway abstracts binary resource storage for a video's
// media slots.
type MediaResourceGateway interface {
	StoreAudioVideo(ctx context.Context, id ID, resource VideoResource) (AudioVideoMedia, error)
	StoreImage(ctx context.Context, id ID, resource VideoResource) (ImageMedia, error)
	ClearResources(ctx context.Context, id ID) error
	GetResource(ctx context.Context, id ID, mediaType MediaType) (*Resource, error)
}
