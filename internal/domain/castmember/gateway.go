package castmember

import (
	"context"

	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Gateway abstracts cast member persistence.
type Gateway interface {
	Create(ctx context.Context, m *CastMember) (*CastMember, error)
	Update(ctx context.Context, m *CastMember) (*CastMember, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*CastMember, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*CastMember], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
