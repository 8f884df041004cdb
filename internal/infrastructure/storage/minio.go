package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/pkg/config"
)

// bucketAPI is the part of *minio.Client the store relies on
type bucketAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MinIOStore uploads images to a bucket and hands out presigned URLs
type MinIOStore struct {
	client bucketAPI
	bucket string
	expiry time.Duration
	logger *zap.Logger
}

// NewMinIOStore creates a MinIO-backed store and makes sure the bucket exists
func NewMinIOStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinIOStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.BootstrapTimeout

	return newMinIOStore(ctx, minioClient, cfg, logger, b)
}

func newMinIOStore(ctx context.Context, client bucketAPI, cfg *config.StorageConfig, logger *zap.Logger, policy backoff.BackOff) (*MinIOStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &MinIOStore{
		client: client,
		bucket: cfg.BucketName,
		expiry: cfg.PresignExpiry,
		logger: logger,
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("minio bucket not ready, retrying",
			zap.String("bucket", store.bucket),
			zap.Duration("wait", wait),
			zap.Error(err))
	}
	if err := backoff.RetryNotify(func() error {
		return store.ensureBucket(ctx)
	}, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	logger.Info("minio bucket ready", zap.String("bucket", store.bucket))
	return store, nil
}

// ensureBucket creates the bucket when missing
func (m *MinIOStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put uploads the object and returns a presigned GET URL for it
func (m *MinIOStore) Put(ctx context.Context, obj Object) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, obj.Key, bytes.NewReader(obj.Data), int64(len(obj.Data)), minio.PutObjectOptions{
		ContentType: obj.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	u, err := m.client.PresignedGetObject(ctx, m.bucket, obj.Key, m.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	m.logger.Debug("image stored",
		zap.String("bucket", m.bucket),
		zap.String("object_name", obj.Key),
		zap.Int("size", len(obj.Data)))

	return u.String(), nil
}

// Name identifies the backend in logs
func (m *MinIOStore) Name() string {
	return "minio"
}
