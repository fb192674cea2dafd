package video

import (
	"time"

	"github.com/google/uuid"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/validation"
)

// ID identifies a video aggregate.
type ID string

// NewID generates a fresh video identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom builds an identifier from its string form.
func IDFrom(value string) ID {
	return ID(value)
}

// String returns the underlying value.
func (id ID) String() string {
	return string(id)
}

// Video is the aggregate owning catalog metadata, references to
// categories, genres and cast members, and five optional media slots.
// Reference sets are unordered and unique.
type Video struct {
	ID          ID
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Rating      Rating
	Opened      bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
	Trailer       *AudioVideoMedia
	Video         *AudioVideoMedia

	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID

	events []MediaCreated
}

// NewVideo creates and validates a new video with no media attached.
func NewVideo(
	title, description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened, published bool,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
) (*Video, error) {
	now := time.Now().UTC()
	v := &Video{
		ID:          NewID(),
		Title:       title,
		Description: description,
		LaunchedAt:  launchedAt,
		Duration:    duration,
		Rating:      rating,
		Opened:      opened,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
		Categories:  dedupe(categories),
		Genres:      dedupe(genres),
		CastMembers: dedupe(members),
	}
	if err := v.selfValidate("Failed to create Aggregate Video"); err != nil {
		return nil, err
	}
	return v, nil
}

// With reconstructs a video from stored state without validating.
func With(
	id ID,
	title, description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened, published bool,
	createdAt, updatedAt time.Time,
	banner, thumbnail, thumbnailHalf *ImageMedia,
	trailer, videoMedia *AudioVideoMedia,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
) *Video {
	return &Video{
		ID:            id,
		Title:         title,
		Description:   description,
		LaunchedAt:    launchedAt,
		Duration:      duration,
		Rating:        rating,
		Opened:        opened,
		Published:     published,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Banner:        banner,
		Thumbnail:     thumbnail,
		ThumbnailHalf: thumbnailHalf,
		Trailer:       trailer,
		Video:         videoMedia,
		Categories:    dedupe(categories),
		Genres:        dedupe(genres),
		CastMembers:   dedupe(members),
	}
}

// WithVideo returns a field-for-field copy of the source aggregate.
func WithVideo(v *Video) *Video {
	return With(
		v.ID, v.Title, v.Description, v.LaunchedAt, v.Duration, v.Rating,
		v.Opened, v.Published, v.CreatedAt, v.UpdatedAt,
		v.Banner, v.Thumbnail, v.ThumbnailHalf, v.Trailer, v.Video,
		v.Categories, v.Genres, v.CastMembers,
	)
}

// Update replaces the catalog metadata and reference sets, keeping the
// media slots, and re-validates the aggregate.
func (v *Video) Update(
	title, description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened, published bool,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
) error {
	v.Title = title
	v.Description = description
	v.LaunchedAt = launchedAt
	v.Duration = duration
	v.Rating = rating
	v.Opened = opened
	v.Published = published
	v.Categories = dedupe(categories)
	v.Genres = dedupe(genres)
	v.CastMembers = dedupe(members)
	v.UpdatedAt = time.Now().UTC()
	return v.selfValidate("Failed to update Aggregate Video")
}

// UpdateVideoMedia replaces the video slot. A PENDING media registers a
// MediaCreated event for the encoder pipeline.
func (v *Video) UpdateVideoMedia(media *AudioVideoMedia) *Video {
	v.Video = media
	v.UpdatedAt = time.Now().UTC()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// UpdateTrailerMedia replaces the trailer slot.
func (v *Video) UpdateTrailerMedia(media *AudioVideoMedia) *Video {
	v.Trailer = media
	v.UpdatedAt = time.Now().UTC()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// UpdateBannerMedia replaces the banner slot.
func (v *Video) UpdateBannerMedia(media *ImageMedia) *Video {
	v.Banner = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// UpdateThumbnailMedia replaces the thumbnail slot.
func (v *Video) UpdateThumbnailMedia(media *ImageMedia) *Video {
	v.Thumbnail = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// UpdateThumbnailHalfMedia replaces the half thumbnail slot.
func (v *Video) UpdateThumbnailHalfMedia(media *ImageMedia) *Video {
	v.ThumbnailHalf = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// Processing transitions the named audio/video slot to PROCESSING. An
// empty slot is left untouched.
func (v *Video) Processing(mediaType MediaType) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if v.Video != nil {
			media := v.Video.Processing()
			v.UpdateVideoMedia(&media)
		}
	case MediaTypeTrailer:
		if v.Trailer != nil {
			media := v.Trailer.Processing()
			v.UpdateTrailerMedia(&media)
		}
	}
	return v
}

// Completed transitions the named audio/video slot to COMPLETED with the
// encoded path. An empty slot is left untouched.
func (v *Video) Completed(mediaType MediaType, encodedPath string) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if v.Video != nil {
			media := v.Video.Completed(encodedPath)
			v.UpdateVideoMedia(&media)
		}
	case MediaTypeTrailer:
		if v.Trailer != nil {
			media := v.Trailer.Completed(encodedPath)
			v.UpdateTrailerMedia(&media)
		}
	}
	return v
}

// Events drains and returns the registered domain events.
func (v *Video) Events() []MediaCreated {
	events := v.events
	v.events = nil
	return events
}

// Validate appends this video's field errors to the notification.
func (v *Video) Validate(n *validation.Notification) {
	checkTitleConstraints(v.Title, n)
	checkDescriptionConstraints(v.Description, n)
	checkLaunchedAtConstraints(v.LaunchedAt, n)
	checkRatingConstraints(v.Rating, n)
}

func (v *Video) selfValidate(message string) error {
	n := validation.NewNotification()
	v.Validate(n)
	if n.HasError() {
		return validation.NewNotificationError(message, n)
	}
	return nil
}

func (v *Video) onAudioVideoMediaUpdated(media *AudioVideoMedia) {
	if media != nil && media.IsPendingEncode() {
		v.events = append(v.events, NewMediaCreated(v.ID, media.RawLocation))
	}
}

func dedupe[T comparable](ids []T) []T {
	seen := make(map[T]struct{}, len(ids))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
