package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/streamvault/catalog/internal/config"
	"github.com/streamvault/catalog/internal/domain/video"
)

// S3Service stores resources as S3 objects. Checksum and original file
// name travel as object metadata.
type S3Service struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

const (
	metadataChecksum = "checksum"
	metadataFilename = "filename"
)

// NewS3Service creates an S3 storage service from config. A non-empty
// endpoint points the client at an S3-compatible server such as MinIO.
func NewS3Service(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Service{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// Store uploads the resource under the given object key
func (s *S3Service) Store(ctx context.Context, name string, resource video.Resource) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(resource.Content),
		ContentType: aws.String(resource.ContentType),
		Metadata: map[string]string{
			metadataChecksum: resource.Checksum,
			metadataFilename: resource.Name,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// Get downloads the object stored under name, or returns nil when the
// key does not exist.
func (s *S3Service) Get(ctx context.Context, name string) (*video.Resource, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	content, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return &video.Resource{
		Content:     content,
		Checksum:    result.Metadata[metadataChecksum],
		ContentType: aws.ToString(result.ContentType),
		Name:        result.Metadata[metadataFilename],
	}, nil
}

// List returns the object keys stored under the given prefix
func (s *S3Service) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", err)
		}
		for _, object := range page.Contents {
			names = append(names, aws.ToString(object.Key))
		}
	}
	return names, nil
}

// DeleteAll removes every named object in one batch request
func (s *S3Service) DeleteAll(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(names))
	for _, name := range names {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(name)})
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 objects: %w", err)
	}
	return nil
}
