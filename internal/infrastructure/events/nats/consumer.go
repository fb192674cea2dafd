package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	videoapp "github.com/streamvault/catalog/internal/application/video"
	"github.com/streamvault/catalog/internal/domain/video"
)

// encoderResult is the callback payload posted by the external encoder.
// A COMPLETED result carries the video block; an ERROR result carries
// the original message instead.
type encoderResult struct {
	Status           string `json:"status"`
	ID               string `json:"id"`
	OutputBucketPath string `json:"output_bucket_path"`
	Video            struct {
		ResourceID         string `json:"resource_id"`
		EncodedVideoFolder string `json:"encoded_video_folder"`
		FilePath           string `json:"file_path"`
	} `json:"video"`
	Error   string `json:"error"`
	Message struct {
		ResourceID string `json:"resource_id"`
		FilePath   string `json:"file_path"`
	} `json:"message"`
}

// EncoderResultConsumer consumes encoder callbacks and drives the media
// status update flow.
type EncoderResultConsumer struct {
	client      *Client
	service     *videoapp.Service
	subject     string
	durableName string
	logger      *zap.Logger
}

// NewEncoderResultConsumer creates a consumer bound to the encoder
// results subject.
func NewEncoderResultConsumer(client *Client, service *videoapp.Service, subject, durableName string, logger *zap.Logger) *EncoderResultConsumer {
	return &EncoderResultConsumer{
		client:      client,
		service:     service,
		subject:     subject,
		durableName: durableName,
		logger:      logger.Named("encoder-consumer"),
	}
}

// Start creates the durable consumer and processes messages until the
// context is cancelled.
func (c *EncoderResultConsumer) Start(ctx context.Context) error {
	consumer, err := c.client.JetStream().CreateOrUpdateConsumer(ctx, c.client.config.Stream, jetstream.ConsumerConfig{
		Durable:       c.durableName,
		FilterSubject: c.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	msgs, err := consumer.Messages()
	if err != nil {
		return fmt.Errorf("failed to get messages: %w", err)
	}

	go func() {
		<-ctx.Done()
		msgs.Stop()
	}()

	c.logger.Info("encoder result consumer started",
		zap.String("subject", c.subject),
		zap.String("durable", c.durableName),
	)

	for {
		msg, err := msgs.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("failed to get message", zap.Error(err))
			continue
		}
		if err := c.handle(ctx, msg.Data()); err != nil {
			c.logger.Error("failed to handle encoder result", zap.Error(err))
			_ = msg.Nak()
			continue
		}
		_ = msg.Ack()
	}
}

func (c *EncoderResultConsumer) handle(ctx context.Context, data []byte) error {
	var result encoderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to decode encoder result: %w", err)
	}

	switch video.MediaStatusOf(result.Status) {
	case video.MediaStatusCompleted:
		return c.service.UpdateMediaStatus(ctx, videoapp.UpdateMediaStatusCommand{
			VideoID:    result.ID,
			ResourceID: result.Video.ResourceID,
			Status:     string(video.MediaStatusCompleted),
			Folder:     result.Video.EncodedVideoFolder,
			Filename:   result.Video.FilePath,
		})
	case video.MediaStatusError:
		c.logger.Error("encoder reported failure",
			zap.String("resource_id", result.Message.ResourceID),
			zap.String("file_path", result.Message.FilePath),
			zap.String("error", result.Error),
		)
		return nil
	default:
		c.logger.Warn("ignoring encoder result with unknown status",
			zap.String("status", result.Status))
		return nil
	}
}
