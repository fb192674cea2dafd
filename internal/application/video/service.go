package video

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/streamvault/catalog/pkg/errors"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/pagination"
	"github.com/streamvault/catalog/internal/domain/validation"
	"github.com/streamvault/catalog/internal/domain/video"
)

// EventPublisher forwards media-created events to the encoder pipeline
// after the aggregate was persisted.
type EventPublisher interface {
	PublishMediaCreated(ctx context.Context, event video.MediaCreated) error
}

// Service orchestrates the video use cases: validation, cross-aggregate
// existence checks, media storage with compensating cleanup, and the
// media encoding state machine.
type Service struct {
	categoryGateway   category.Gateway
	genreGateway      genre.Gateway
	castMemberGateway castmember.Gateway
	videoGateway      video.Gateway
	mediaGateway      video.MediaResourceGateway
	publisher         EventPublisher
	logger            *zap.Logger
}

// NewService creates a video service.
func NewService(
	categoryGateway category.Gateway,
	genreGateway genre.Gateway,
	castMemberGateway castmember.Gateway,
	videoGateway video.Gateway,
	mediaGateway video.MediaResourceGateway,
	publisher EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		categoryGateway:   categoryGateway,
		genreGateway:      genreGateway,
		castMemberGateway: castMemberGateway,
		videoGateway:      videoGateway,
		mediaGateway:      mediaGateway,
		publisher:         publisher,
		logger:            logger,
	}
}

// Create runs the full creation protocol: normalize inputs, check every
// referenced aggregate family, build the self-validating aggregate, and
// only then store binaries and persist. Any failure from resource
// storage through persistence triggers best-effort cleanup of already
// stored resources.
func (s *Service) Create(ctx context.Context, cmd CreateVideoCommand) (*video.Video, error) {
	rating := video.RatingOf(cmd.Rating)
	categories := toIDs(cmd.Categories, category.IDFrom)
	genres := toIDs(cmd.Genres, genre.IDFrom)
	members := toIDs(cmd.Members, castmember.IDFrom)

	notification := validation.NewNotification()
	if err := s.validateReferences(ctx, categories, genres, members, notification); err != nil {
		return nil, err
	}

	v, err := video.NewVideo(
		cmd.Title, cmd.Description, cmd.LaunchYear, cmd.Duration, rating,
		cmd.Opened, cmd.Published, categories, genres, members,
	)
	if err := mergeAggregateFailure(err, notification); err != nil {
		return nil, err
	}

	if notification.HasError() {
		return nil, validation.NewNotificationError("Could not create Aggregate Video", notification)
	}

	return s.createWithResources(ctx, cmd, v)
}

// createWithResources stores every present resource and persists the
// aggregate. On any failure all resources already stored for this video
// id are cleared before the error is re-raised as an infrastructure
// failure carrying the video id.
func (s *Service) createWithResources(ctx context.Context, cmd CreateVideoCommand, v *video.Video) (*video.Video, error) {
	created, err := func() (*video.Video, error) {
		if cmd.Video != nil {
			media, err := s.mediaGateway.StoreAudioVideo(ctx, v.ID, video.VideoResource{Resource: *cmd.Video, Type: video.MediaTypeVideo})
			if err != nil {
				return nil, err
			}
			v.UpdateVideoMedia(&media)
		}
		if cmd.Trailer != nil {
			media, err := s.mediaGateway.StoreAudioVideo(ctx, v.ID, video.VideoResource{Resource: *cmd.Trailer, Type: video.MediaTypeTrailer})
			if err != nil {
				return nil, err
			}
			v.UpdateTrailerMedia(&media)
		}
		if cmd.Banner != nil {
			media, err := s.mediaGateway.StoreImage(ctx, v.ID, video.VideoResource{Resource: *cmd.Banner, Type: video.MediaTypeBanner})
			if err != nil {
				return nil, err
			}
			v.UpdateBannerMedia(&media)
		}
		if cmd.Thumbnail != nil {
			media, err := s.mediaGateway.StoreImage(ctx, v.ID, video.VideoResource{Resource: *cmd.Thumbnail, Type: video.MediaTypeThumbnail})
			if err != nil {
				return nil, err
			}
			v.UpdateThumbnailMedia(&media)
		}
		if cmd.ThumbnailHalf != nil {
			media, err := s.mediaGateway.StoreImage(ctx, v.ID, video.VideoResource{Resource: *cmd.ThumbnailHalf, Type: video.MediaTypeThumbnailHalf})
			if err != nil {
				return nil, err
			}
			v.UpdateThumbnailHalfMedia(&media)
		}
		return s.videoGateway.Create(ctx, v)
	}()
	if err != nil {
		if clearErr := s.mediaGateway.ClearResources(ctx, v.ID); clearErr != nil {
			s.logger.Error("failed to clear resources after aborted creation",
				zap.Error(clearErr),
				zap.String("video_id", v.ID.String()))
		}
		return nil, apperrors.Internal(
			fmt.Sprintf("An error occurred while creating video [videoID: %s]", v.ID),
			err,
		)
	}

	s.publishEvents(ctx, created)

	s.logger.Info("video created",
		zap.String("id", created.ID.String()),
		zap.String("title", created.Title))
	return created, nil
}

// Update mutates a video's metadata after running the same existence
// checks as Create. Media slots are untouched.
func (s *Service) Update(ctx context.Context, cmd UpdateVideoCommand) (*video.Video, error) {
	v, err := s.videoGateway.FindByID(ctx, video.IDFrom(cmd.ID))
	if err != nil {
		return nil, err
	}

	rating := video.RatingOf(cmd.Rating)
	categories := toIDs(cmd.Categories, category.IDFrom)
	genres := toIDs(cmd.Genres, genre.IDFrom)
	members := toIDs(cmd.Members, castmember.IDFrom)

	notification := validation.NewNotification()
	if err := s.validateReferences(ctx, categories, genres, members, notification); err != nil {
		return nil, err
	}

	updateErr := v.Update(
		cmd.Title, cmd.Description, cmd.LaunchYear, cmd.Duration, rating,
		cmd.Opened, cmd.Published, categories, genres, members,
	)
	if err := mergeAggregateFailure(updateErr, notification); err != nil {
		return nil, err
	}

	if notification.HasError() {
		return nil, validation.NewNotificationError("Could not update Aggregate Video", notification)
	}

	updated, err := s.videoGateway.Update(ctx, v)
	if err != nil {
		return nil, apperrors.Internal(
			fmt.Sprintf("An error occurred while updating video [videoID: %s]", v.ID),
			err,
		)
	}

	s.publishEvents(ctx, updated)
	return updated, nil
}

// Delete removes the aggregate and clears its stored resources.
func (s *Service) Delete(ctx context.Context, id string) error {
	videoID := video.IDFrom(id)
	if err := s.videoGateway.DeleteByID(ctx, videoID); err != nil {
		return err
	}
	return s.mediaGateway.ClearResources(ctx, videoID)
}

// Get loads a video by id.
func (s *Service) Get(ctx context.Context, id string) (*video.Video, error) {
	return s.videoGateway.FindByID(ctx, video.IDFrom(id))
}

// List returns one page of video previews.
func (s *Service) List(ctx context.Context, query video.SearchQuery) (pagination.Page[video.Preview], error) {
	return s.videoGateway.FindAll(ctx, query)
}

// UploadMedia stores one resource and attaches it to the matching slot
// of an existing video. A single resource needs no compensation.
func (s *Service) UploadMedia(ctx context.Context, cmd UploadMediaCommand) (*video.Video, error) {
	videoID := video.IDFrom(cmd.VideoID)
	v, err := s.videoGateway.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	switch cmd.Resource.Type {
	case video.MediaTypeVideo:
		media, err := s.mediaGateway.StoreAudioVideo(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		v.UpdateVideoMedia(&media)
	case video.MediaTypeTrailer:
		media, err := s.mediaGateway.StoreAudioVideo(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		v.UpdateTrailerMedia(&media)
	case video.MediaTypeBanner:
		media, err := s.mediaGateway.StoreImage(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		v.UpdateBannerMedia(&media)
	case video.MediaTypeThumbnail:
		media, err := s.mediaGateway.StoreImage(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		v.UpdateThumbnailMedia(&media)
	case video.MediaTypeThumbnailHalf:
		media, err := s.mediaGateway.StoreImage(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		v.UpdateThumbnailHalfMedia(&media)
	default:
		return nil, apperrors.New(apperrors.ErrorTypeValidation,
			fmt.Sprintf("invalid media type: %s", cmd.Resource.Type))
	}

	updated, err := s.videoGateway.Update(ctx, v)
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)
	return updated, nil
}

// GetMedia retrieves the stored binary for one media slot.
func (s *Service) GetMedia(ctx context.Context, cmd GetMediaCommand) (*video.Resource, error) {
	mediaType := video.MediaTypeOf(cmd.MediaType)
	if mediaType == "" {
		return nil, apperrors.New(apperrors.ErrorTypeValidation,
			fmt.Sprintf("media type %s doesn't exist", cmd.MediaType))
	}

	resource, err := s.mediaGateway.GetResource(ctx, video.IDFrom(cmd.VideoID), mediaType)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, apperrors.New(apperrors.ErrorTypeNotFound,
			fmt.Sprintf("resource %s not found for video %s", cmd.MediaType, cmd.VideoID))
	}
	return resource, nil
}

// UpdateMediaStatus applies an encoder callback to the slot whose
// current media id matches the callback's resource id. Stale or unknown
// resource ids are silently ignored; PENDING is accepted without a
// transition.
func (s *Service) UpdateMediaStatus(ctx context.Context, cmd UpdateMediaStatusCommand) error {
	v, err := s.videoGateway.FindByID(ctx, video.IDFrom(cmd.VideoID))
	if err != nil {
		return err
	}

	encodedPath := fmt.Sprintf("%s/%s", cmd.Folder, cmd.Filename)

	switch {
	case matches(cmd.ResourceID, v.Video):
		return s.applyStatus(ctx, v, video.MediaTypeVideo, cmd.Status, encodedPath)
	case matches(cmd.ResourceID, v.Trailer):
		return s.applyStatus(ctx, v, video.MediaTypeTrailer, cmd.Status, encodedPath)
	}
	return nil
}

func (s *Service) applyStatus(ctx context.Context, v *video.Video, mediaType video.MediaType, status, encodedPath string) error {
	switch video.MediaStatusOf(status) {
	case video.MediaStatusPending:
		// idempotent initial state, nothing to transition
	case video.MediaStatusProcessing:
		v.Processing(mediaType)
	case video.MediaStatusCompleted:
		v.Completed(mediaType, encodedPath)
	default:
		return apperrors.New(apperrors.ErrorTypeValidation,
			fmt.Sprintf("invalid media status: %s", status))
	}

	if _, err := s.videoGateway.Update(ctx, v); err != nil {
		return err
	}
	return nil
}

func (s *Service) validateReferences(
	ctx context.Context,
	categories []category.ID,
	genres []genre.ID,
	members []castmember.ID,
	notification *validation.Notification,
) error {
	categoryCheck, err := validation.CheckExistence("categories", categories, func(ids []category.ID) ([]category.ID, error) {
		return s.categoryGateway.ExistsByIDs(ctx, ids)
	})
	if err != nil {
		return err
	}
	notification.Merge(categoryCheck)

	genreCheck, err := validation.CheckExistence("genres", genres, func(ids []genre.ID) ([]genre.ID, error) {
		return s.genreGateway.ExistsByIDs(ctx, ids)
	})
	if err != nil {
		return err
	}
	notification.Merge(genreCheck)

	memberCheck, err := validation.CheckExistence("cast members", members, func(ids []castmember.ID) ([]castmember.ID, error) {
		return s.castMemberGateway.ExistsByIDs(ctx, ids)
	})
	if err != nil {
		return err
	}
	notification.Merge(memberCheck)
	return nil
}

func (s *Service) publishEvents(ctx context.Context, v *video.Video) {
	for _, event := range v.Events() {
		if err := s.publisher.PublishMediaCreated(ctx, event); err != nil {
			s.logger.Error("failed to publish media created event",
				zap.Error(err),
				zap.String("video_id", event.VideoID))
		}
	}
}

func matches(resourceID string, media *video.AudioVideoMedia) bool {
	return media != nil && media.ID == resourceID
}

// mergeAggregateFailure folds a self-validation failure into the shared
// notification so it can be reported together with existence errors.
// Any other error kind is passed through.
func mergeAggregateFailure(err error, notification *validation.Notification) error {
	if err == nil {
		return nil
	}
	var notifErr *validation.NotificationError
	if errors.As(err, &notifErr) {
		notification.Merge(notifErr.Notification)
		return nil
	}
	return err
}

func toIDs[T ~string](ids []string, from func(string) T) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, from(id))
	}
	return out
}
