package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// diskService stores uploaded images in a served directory under a
// collision-resistant generated filename.
type diskService struct {
	dir       string
	staticURL string
	logger    *zap.Logger
}

func NewDiskService(dir string, staticURL string, logger *zap.Logger) *diskService {
	return &diskService{
		dir:       dir,
		staticURL: strings.TrimSuffix(staticURL, "/"),
		logger:    logger,
	}
}

func (s *diskService) StoreImage(ctx context.Context, reader io.Reader, extension string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("error creating upload directory", zap.Error(err))
		return "", err
	}

	fileName := fmt.Sprintf("%s%s", uuid.NewString(), extension)
	path := filepath.Join(s.dir, fileName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error("error when creating upload file", zap.Error(err))
		return "", err
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(path)
		s.logger.Error("error when writing upload file", zap.Error(err))
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return s.staticURL + "/" + fileName, nil
}
