package storage

import (
	"context"

	"github.com/streamvault/catalog/internal/domain/video"
)

// Service abstracts flat binary storage keyed by name.
type Service interface {
	Store(ctx context.Context, name string, resource video.Resource) error
	Get(ctx context.Context, name string) (*video.Resource, error)
	List(ctx context.Context, prefix string) ([]string, error)
	DeleteAll(ctx context.Context, names []string) error
}
