package video

import "time"

// MediaCreated signals that an audio/video media was attached and awaits
// encoding. It is published after the aggregate is persisted.
type MediaCreated struct {
	VideoID    string    `json:"resource_id"`
	FilePath   string    `json:"file_path"`
	OccurredAt time.Time `json:"occurred_on"`
}

// NewMediaCreated builds the event for a video and its raw location.
func NewMediaCreated(videoID ID, rawLocation string) MediaCreated {
	return MediaCreated{
		VideoID:    videoID.String(),
		FilePath:   rawLocation,
		OccurredAt: time.Now().UTC(),
	}
}
