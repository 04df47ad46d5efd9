package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the subset of object store operations the archive sink needs
type ObjectStore interface {
	// EnsureBucket creates the bucket if it does not exist yet
	EnsureBucket(ctx context.Context, bucket string) error

	// Put uploads an object
	Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error
}

// Options configures the MinIO/S3 connection
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// MinioObjectStore implements ObjectStore on a MinIO or S3-compatible endpoint
type MinioObjectStore struct {
	client *minio.Client
	region string
}

// NewMinioObjectStore connects a client to the configured endpoint.
// No request is made until the first operation.
func NewMinioObjectStore(opts Options) (*MinioObjectStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return &MinioObjectStore{client: client, region: opts.Region}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *MinioObjectStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Put uploads an object
func (s *MinioObjectStore) Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
	if _, err := s.client.PutObject(ctx, bucket, obj, reader, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, obj, err)
	}
	return nil
}
