package category

import (
	"context"

	"github.com/streamvault/catalog/internal/domain/pagination"
)

// Gateway abstracts category persistence. Implementations are external
// collaborators; the aggregate never persists itself.
type Gateway interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	DeleteByID(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Category, error)
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Page[*Category], error)
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
