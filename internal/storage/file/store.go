package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/storage"
	"go.uber.org/zap"
)

// store persists the document as a JSON file on local disk. Writes go through
// a temp file in the same directory followed by a rename, so a crash mid-save
// never truncates the previous revision. Versions are not tracked; the
// per-process serialization in the documents manager is the only writer.
type store struct {
	path   string
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) *store {
	return &store{
		path:   path,
		logger: logger,
	}
}

func (s *store) Load(ctx context.Context) (*document.Document, storage.Version, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", storage.ErrNotFound
		}

		s.logger.Error("unexpected error when reading store file", zap.Error(err))

		return nil, "", fmt.Errorf("read store file: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("store file contains invalid JSON", zap.Error(err))

		return nil, "", fmt.Errorf("decode store file: %w", err)
	}

	return &doc, "", nil
}

func (s *store) Save(ctx context.Context, doc *document.Document, _ storage.Version) (storage.Version, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("replace store file: %w", err)
	}

	return "", nil
}
