package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet
func (a *Adapter) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.config.BucketName)
	if err != nil {
		return classify(fmt.Errorf("failed to check if bucket exists: %w", err))
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.config.BucketName, minio.MakeBucketOptions{}); err != nil {
		// a concurrent worker may have created it first
		resp := minio.ToErrorResponse(err)
		if resp.Code == "BucketAlreadyOwnedByYou" || resp.Code == "BucketAlreadyExists" {
			return nil
		}
		return classify(fmt.Errorf("failed to create bucket: %w", err))
	}

	a.logger.Info("bucket created", slog.String("bucket", a.config.BucketName))
	return nil
}

// Put writes an object under the given key
func (a *Adapter) Put(ctx context.Context, key string, content []byte) error {
	_, err := a.client.PutObject(ctx, a.config.BucketName, key,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return classify(fmt.Errorf("failed to put object %s: %w", key, err))
	}

	a.logger.Info("object stored",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName),
		slog.Int("size", len(content)))
	return nil
}

// Get reads an object's full content
func (a *Adapter) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(fmt.Errorf("failed to get object %s: %w", key, err))
	}
	defer object.Close()

	// GetObject is lazy, errors only surface on read
	content, err := io.ReadAll(object)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read object %s: %w", key, err))
	}
	return content, nil
}

// classify maps minio failures onto the domain's storage sentinels so the
// task runner can tell retryable failures from terminal ones
func classify(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, err)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %s", domain.ErrStorageAccessDenied, err)
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou", "OperationAborted":
		return fmt.Errorf("%w: %s", domain.ErrStorageConflict, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s", domain.ErrStorageTransient, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError ||
		resp.Code == "SlowDown" || resp.Code == "RequestTimeout" {
		return fmt.Errorf("%w: %s", domain.ErrStorageTransient, err)
	}

	return err
}
