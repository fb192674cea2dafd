package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/domain/video"
)

// Publisher emits media.created integration events over JetStream
type Publisher struct {
	client  *Client
	subject string
	logger  *zap.Logger
}

// NewPublisher creates a new NATS event publisher
func NewPublisher(client *Client, subject string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		subject: subject,
		logger:  logger.Named("publisher"),
	}
}

// PublishMediaCreated publishes the event, deduplicated by resource id
func (p *Publisher) PublishMediaCreated(ctx context.Context, event video.MediaCreated) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.client.JetStream().Publish(pubCtx, p.subject, data,
		jetstream.WithMsgID(event.VideoID+":"+event.FilePath))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("media created event published",
		zap.String("video_id", event.VideoID),
		zap.String("file_path", event.FilePath),
		zap.String("subject", p.subject),
		zap.Uint64("sequence", ack.Sequence),
	)
	return nil
}
