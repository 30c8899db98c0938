package media

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStore archives artifacts in an S3-compatible bucket
type MinioStore struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// MinioConfig carries connection settings for the object store
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStore connects to MinIO and ensures the bucket exists
func NewMinioStore(ctx context.Context, cfg MinioConfig, logger *zap.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *MinioStore) SaveUpload(ctx context.Context, data []byte, originalName string) (string, error) {
	key := path.Join(uploadsDir, timestampName(uploadExt(originalName)))
	return s.put(ctx, key, data)
}

func (s *MinioStore) SaveResponse(ctx context.Context, data []byte, ext string) (string, error) {
	key := path.Join(responsesDir, timestampName(ext))
	return s.put(ctx, key, data)
}

func (s *MinioStore) put(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "audio/mpeg"})
	if err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", key, err)
	}
	s.logger.Debug("artifact stored", zap.String("bucket", s.bucket), zap.String("key", key))
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
