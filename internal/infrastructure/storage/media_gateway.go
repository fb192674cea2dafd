package storage

import (
	"context"
	"strings"

	"github.com/streamvault/catalog/internal/domain/video"
)

// MediaGateway implements video.MediaResourceGateway on top of a
// storage Service. Object keys follow two configurable patterns: the
// folder for a video ("{videoId}" placeholder) and the file name for a
// slot ("{type}" placeholder).
type MediaGateway struct {
	service         Service
	filenamePattern string
	locationPattern string
}

// NewMediaGateway creates a media gateway with the given key patterns
func NewMediaGateway(service Service, filenamePattern, locationPattern string) *MediaGateway {
	return &MediaGateway{
		service:         service,
		filenamePattern: filenamePattern,
		locationPattern: locationPattern,
	}
}

// StoreAudioVideo stores the binary and returns a PENDING media
// pointing at its raw location.
func (g *MediaGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource video.VideoResource) (video.AudioVideoMedia, error) {
	path := g.filepath(id, resource.Type)
	if err := g.service.Store(ctx, path, resource.Resource); err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(resource.Resource.Checksum, resource.Resource.Name, path), nil
}

// StoreImage stores the binary and returns the resulting image media
func (g *MediaGateway) StoreImage(ctx context.Context, id video.ID, resource video.VideoResource) (video.ImageMedia, error) {
	path := g.filepath(id, resource.Type)
	if err := g.service.Store(ctx, path, resource.Resource); err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(resource.Resource.Checksum, resource.Resource.Name, path), nil
}

// ClearResources deletes every object stored under the video's folder
func (g *MediaGateway) ClearResources(ctx context.Context, id video.ID) error {
	names, err := g.service.List(ctx, g.folder(id))
	if err != nil {
		return err
	}
	return g.service.DeleteAll(ctx, names)
}

// GetResource returns the binary stored for the given slot, or nil when
// nothing is stored.
func (g *MediaGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (*video.Resource, error) {
	return g.service.Get(ctx, g.filepath(id, mediaType))
}

func (g *MediaGateway) filename(mediaType video.MediaType) string {
	return strings.ReplaceAll(g.filenamePattern, "{type}", string(mediaType))
}

func (g *MediaGateway) folder(id video.ID) string {
	return strings.ReplaceAll(g.locationPattern, "{videoId}", id.String())
}

func (g *MediaGateway) filepath(id video.ID, mediaType video.MediaType) string {
	return g.folder(id) + "/" + g.filename(mediaType)
}
