package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/catalog/internal/domain/video"
	"github.com/streamvault/catalog/internal/infrastructure/storage"
)

func newMediaGateway() (*storage.MediaGateway, *storage.MemoryService) {
	service := storage.NewMemoryService()
	return storage.NewMediaGateway(service, "type-{type}", "videoId-{videoId}"), service
}

func TestMediaGatewayStoreAudioVideo(t *testing.T) {
	gateway, service := newMediaGateway()
	ctx := context.Background()
	id := video.IDFrom("123")

	media, err := gateway.StoreAudioVideo(ctx, id, video.VideoResource{
		Resource: newResource("video.mp4"),
		Type:     video.MediaTypeVideo,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, media.ID)
	assert.Equal(t, "checksum-video.mp4", media.Checksum)
	assert.Equal(t, "video.mp4", media.Name)
	assert.Equal(t, "videoId-123/type-VIDEO", media.RawLocation)
	assert.Equal(t, video.MediaStatusPending, media.Status)
	assert.Empty(t, media.EncodedLocation)

	stored, err := service.Get(ctx, "videoId-123/type-VIDEO")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "video.mp4", stored.Name)
}

func TestMediaGatewayStoreImage(t *testing.T) {
	gateway, service := newMediaGateway()
	ctx := context.Background()
	id := video.IDFrom("123")

	media, err := gateway.StoreImage(ctx, id, video.VideoResource{
		Resource: newResource("banner.png"),
		Type:     video.MediaTypeBanner,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, media.ID)
	assert.Equal(t, "videoId-123/type-BANNER", media.Location)

	stored, err := service.Get(ctx, "videoId-123/type-BANNER")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestMediaGatewayGetResource(t *testing.T) {
	gateway, _ := newMediaGateway()
	ctx := context.Background()
	id := video.IDFrom("123")

	_, err := gateway.StoreAudioVideo(ctx, id, video.VideoResource{
		Resource: newResource("video.mp4"),
		Type:     video.MediaTypeVideo,
	})
	require.NoError(t, err)

	found, err := gateway.GetResource(ctx, id, video.MediaTypeVideo)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "video.mp4", found.Name)

	absent, err := gateway.GetResource(ctx, id, video.MediaTypeTrailer)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMediaGatewayClearResourcesRemovesOnlyThatVideo(t *testing.T) {
	gateway, service := newMediaGateway()
	ctx := context.Background()

	first := video.IDFrom("123")
	second := video.IDFrom("456")

	_, err := gateway.StoreAudioVideo(ctx, first, video.VideoResource{
		Resource: newResource("video.mp4"),
		Type:     video.MediaTypeVideo,
	})
	require.NoError(t, err)
	_, err = gateway.StoreImage(ctx, first, video.VideoResource{
		Resource: newResource("banner.png"),
		Type:     video.MediaTypeBanner,
	})
	require.NoError(t, err)
	_, err = gateway.StoreAudioVideo(ctx, second, video.VideoResource{
		Resource: newResource("other.mp4"),
		Type:     video.MediaTypeVideo,
	})
	require.NoError(t, err)

	require.NoError(t, gateway.ClearResources(ctx, first))

	names, err := service.List(ctx, "videoId-123")
	require.NoError(t, err)
	assert.Empty(t, names)

	kept, err := service.Get(ctx, "videoId-456/type-VIDEO")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
