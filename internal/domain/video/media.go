package video

import (
	"github.com/google/uuid"
)

// MediaStatus is the encoding lifecycle state of an audio/video media.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusError      MediaStatus = "ERROR"
)

// MediaStatusOf resolves a label to a known status, or the zero value.
func MediaStatusOf(value string) MediaStatus {
	switch MediaStatus(value) {
	case MediaStatusPending, MediaStatusProcessing, MediaStatusCompleted, MediaStatusError:
		return MediaStatus(value)
	}
	return ""
}

// MediaType names one of the five media slots of a video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// MediaTypeOf resolves a label to a known media type, or the zero value.
func MediaTypeOf(value string) MediaType {
	switch MediaType(value) {
	case MediaTypeVideo, MediaTypeTrailer, MediaTypeBanner, MediaTypeThumbnail, MediaTypeThumbnailHalf:
		return MediaType(value)
	}
	return ""
}

// AudioVideoMedia is an immutable value object describing a stored
// audio/video binary and its encoding state. Transitions return new
// values; replacing a slot resets state via a brand-new id.
type AudioVideoMedia struct {
	ID              string
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
}

// NewAudioVideoMedia creates a media in PENDING with a fresh resource id
// and no encoded location yet.
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		ID:          uuid.NewString(),
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// AudioVideoMediaWith reconstructs a media from stored state.
func AudioVideoMediaWith(id, checksum, name, rawLocation, encodedLocation string, status MediaStatus) AudioVideoMedia {
	return AudioVideoMedia{
		ID:              id,
		Checksum:        checksum,
		Name:            name,
		RawLocation:     rawLocation,
		EncodedLocation: encodedLocation,
		Status:          status,
	}
}

// Processing returns a copy transitioned to PROCESSING.
func (m AudioVideoMedia) Processing() AudioVideoMedia {
	m.Status = MediaStatusProcessing
	return m
}

// Completed returns a copy transitioned to COMPLETED with the encoded
// location set.
func (m AudioVideoMedia) Completed(encodedPath string) AudioVideoMedia {
	m.Status = MediaStatusCompleted
	m.EncodedLocation = encodedPath
	return m
}

// IsPendingEncode reports whether the media still awaits encoding.
func (m AudioVideoMedia) IsPendingEncode() bool {
	return m.Status == MediaStatusPending
}

// ImageMedia is an immutable value object describing a stored image.
// Images are stored synchronously and carry no encoding status.
type ImageMedia struct {
	ID       string
	Checksum string
	Name     string
	Location string
}

// NewImageMedia creates an image media with a fresh resource id.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{
		ID:       uuid.NewString(),
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}

// ImageMediaWith reconstructs an image media from stored state.
func ImageMediaWith(id, checksum, name, location string) ImageMedia {
	return ImageMedia{
		ID:       id,
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}
