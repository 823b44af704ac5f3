package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ImageStore persists product images and hands back publicly
// reachable URLs.
type ImageStore interface {
	// Upload stores the image under a generated key and returns its
	// public URL.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// s3ImageStore implements ImageStore on AWS S3.
type s3ImageStore struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3ImageStore creates an S3-backed product image store.
func NewS3ImageStore(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (ImageStore, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 image store initialised")

	return &s3ImageStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores the image and returns its public URL. Keys never
// collide: each upload gets a timestamped, uuid-suffixed name.
func (s *s3ImageStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s%d-%s%s", s.prefix, time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to upload image to S3")
		return "", fmt.Errorf("failed to upload image to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)

	s.logger.Info().
		Str("key", key).
		Str("url", url).
		Msg("product image uploaded")

	return url, nil
}
