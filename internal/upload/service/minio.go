package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// minioService stores uploaded images in a MinIO bucket and hands back a
// public URL served by the blob store.
type minioService struct {
	minioClient *minio.Client
	bucket      string
	publicURL   string
	logger      *zap.Logger
}

func NewMinioService(minioClient *minio.Client, bucket string, publicURL string, logger *zap.Logger) *minioService {
	return &minioService{
		minioClient: minioClient,
		bucket:      bucket,
		publicURL:   strings.TrimSuffix(publicURL, "/"),
		logger:      logger,
	}
}

func (s *minioService) StoreImage(ctx context.Context, reader io.Reader, extension string) (string, error) {
	exists, err := s.minioClient.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return "", err
	}

	if !exists {
		if err := s.minioClient.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return "", err
		}
	}

	fileName := fmt.Sprintf("%s%s", uuid.NewString(), extension)

	ui, err := s.minioClient.PutObject(ctx, s.bucket, fileName, reader, -1, minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("error uploading object", zap.Error(err))
		return "", err
	}

	s.logger.Info("uploaded image",
		zap.String("bucket", ui.Bucket),
		zap.String("key", ui.Key),
		zap.Int64("size", ui.Size),
	)

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, fileName), nil
}
