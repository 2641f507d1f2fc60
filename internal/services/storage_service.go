package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"sejahtera/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const proofFolder = "cv_sejahtera/payments"

// ProofStorage stores uploaded payment-proof files and hands back a stable
// URL to keep on the order record.
type ProofStorage interface {
	EnsureBucket(ctx context.Context) error
	UploadProof(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error)
}

type minioStorage struct {
	client *minio.Client
	bucket string
	base   string
}

func NewMinioStorage(cfg config.UploadConfig) (ProofStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.APIKey, cfg.APISecret, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &minioStorage{
		client: client,
		bucket: cfg.CloudName,
		base:   fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

func (s *minioStorage) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !found {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// UploadProof stores the file under a uuid-prefixed object name so repeated
// uploads of the same filename never collide.
func (s *minioStorage) UploadProof(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := fmt.Sprintf("%s/%s_%s", proofFolder, uuid.NewString(), path.Base(filename))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.base, s.bucket, objectName), nil
}
