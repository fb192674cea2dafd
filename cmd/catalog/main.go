package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	videoapp "github.com/streamvault/catalog/internal/application/video"
	"github.com/streamvault/catalog/internal/config"
	"github.com/streamvault/catalog/internal/infrastructure/events/kafka"
	"github.com/streamvault/catalog/internal/infrastructure/events/nats"
	gormpersistence "github.com/streamvault/catalog/internal/infrastructure/persistence/gorm"
	"github.com/streamvault/catalog/internal/infrastructure/storage"
	"github.com/streamvault/catalog/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	log.Info("catalog service starting",
		zap.String("service", cfg.App.ServiceName),
		zap.String("environment", cfg.App.Environment),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("connecting to database")
	db, dbCleanup, err := gormpersistence.NewDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbCleanup()

	categoryRepo := gormpersistence.NewCategoryRepository(db)
	genreRepo := gormpersistence.NewGenreRepository(db)
	castMemberRepo := gormpersistence.NewCastMemberRepository(db)
	videoRepo := gormpersistence.NewVideoRepository(db)

	storageService, err := newStorageService(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}
	mediaGateway := storage.NewMediaGateway(storageService,
		cfg.Storage.FilenamePattern, cfg.Storage.LocationPattern)

	natsClient, natsCleanup, err := nats.NewClient(cfg.NATS, log)
	if err != nil {
		log.Fatal("failed to connect to NATS", zap.Error(err))
	}
	defer natsCleanup()

	publisher, err := newPublisher(cfg, natsClient, log)
	if err != nil {
		log.Fatal("failed to initialize event publisher", zap.Error(err))
	}

	videoService := videoapp.NewService(
		categoryRepo,
		genreRepo,
		castMemberRepo,
		videoRepo,
		mediaGateway,
		publisher,
		log,
	)

	consumer := nats.NewEncoderResultConsumer(natsClient, videoService,
		cfg.NATS.EncoderResultsSubject, cfg.NATS.DurableName, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- consumer.Start(ctx)
	}()

	log.Info("catalog service started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("consumer stopped", zap.Error(err))
		}
	}
	cancel()
}

func newStorageService(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Service, error) {
	switch cfg.Storage.Type {
	case "s3":
		return storage.NewS3Service(ctx, cfg.Storage.S3, log)
	default:
		log.Info("using in-memory storage service")
		return storage.NewMemoryService(), nil
	}
}

func newPublisher(cfg *config.Config, natsClient *nats.Client, log *zap.Logger) (videoapp.EventPublisher, error) {
	switch cfg.Messaging.Broker {
	case "kafka":
		return kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.MediaCreatedTopic)
	default:
		return nats.NewPublisher(natsClient, cfg.NATS.MediaCreatedSubject, log), nil
	}
}
