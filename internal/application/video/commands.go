package video

import (
	"github.com/streamvault/catalog/internal/domain/video"
)

// CreateVideoCommand carries the inputs to create a video, including the
// optional binary resources for its five media slots.
type CreateVideoCommand struct {
	Title       string
	Description string
	LaunchYear  int
	Duration    float64
	Rating      string
	Opened      bool
	Published   bool
	Categories  []string
	Genres      []string
	Members     []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateVideoCommand carries the inputs to update a video's metadata and
// reference sets. Media slots are not touched by this command.
type UpdateVideoCommand struct {
	ID          string
	Title       string
	Description string
	LaunchYear  int
	Duration    float64
	Rating      string
	Opened      bool
	Published   bool
	Categories  []string
	Genres      []string
	Members     []string
}

// UploadMediaCommand attaches a single binary resource to one media slot
// of an existing video.
type UploadMediaCommand struct {
	VideoID  string
	Resource video.VideoResource
}

// GetMediaCommand retrieves the stored binary for one media slot.
type GetMediaCommand struct {
	VideoID   string
	MediaType string
}

// UpdateMediaStatusCommand is the encoder callback. Folder and filename
// are joined to form the encoded path handed to the COMPLETED
// transition.
type UpdateMediaStatusCommand struct {
	VideoID    string
	ResourceID string
	Status     string
	Folder     string
	Filename   string
}
