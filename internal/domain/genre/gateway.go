package genre

import (
	"context"

	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Gateway abstracts genre persistence.
type Gateway interface {
	Create(ctx context.Context, g *Genre) (*Genre, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Genre, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*Genre], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
