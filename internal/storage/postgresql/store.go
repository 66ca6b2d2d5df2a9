package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/storage"
	"github.com/yacinedev/mystore-backend/pkg/client/postgresql"
	"go.uber.org/zap"
)

const documentName = "store"

// store keeps the document as a single versioned jsonb row. Saves are
// compare-and-swap on the version column, so a concurrent writer from another
// process surfaces as storage.ErrConflict instead of silently losing data.
type store struct {
	client postgresql.Client
	logger *zap.Logger
}

func New(client postgresql.Client, logger *zap.Logger) *store {
	return &store{
		client: client,
		logger: logger,
	}
}

func (s *store) logSQLQuery(sql string) {
	s.logger.Debug("SQL query", zap.String("query", strings.Join(strings.Fields(sql), " ")))
}

func (s *store) Load(ctx context.Context) (*document.Document, storage.Version, error) {
	sql := `
        SELECT data, version
        FROM store_documents
        WHERE name=$1
    `

	s.logSQLQuery(sql)

	var (
		data    []byte
		version int64
	)
	if err := s.client.QueryRow(ctx, sql, documentName).Scan(&data, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", storage.ErrNotFound
		}

		s.logger.Error("unexpected error when loading document", zap.Error(err))

		return nil, "", err
	}

	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("decode document: %w", err)
	}

	return &doc, storage.Version(strconv.FormatInt(version, 10)), nil
}

func (s *store) Save(ctx context.Context, doc *document.Document, version storage.Version) (storage.Version, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	if version == "" {
		return s.create(ctx, data)
	}

	current, err := strconv.ParseInt(string(version), 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed version token: %w", err)
	}

	sql := `
        UPDATE store_documents
        SET data=$2, version=version+1, updated_at=now()
        WHERE name=$1 AND version=$3
    `

	s.logSQLQuery(sql)

	tag, err := s.client.Exec(ctx, sql, documentName, data, current)
	if err != nil {
		s.logger.Error("unexpected error when saving document", zap.Error(err))
		return "", err
	}

	if tag.RowsAffected() == 0 {
		return "", storage.ErrConflict
	}

	return storage.Version(strconv.FormatInt(current+1, 10)), nil
}

func (s *store) create(ctx context.Context, data []byte) (storage.Version, error) {
	sql := `
        INSERT INTO store_documents (name, data, version)
        VALUES ($1, $2, 1)
        ON CONFLICT (name) DO NOTHING
    `

	s.logSQLQuery(sql)

	tag, err := s.client.Exec(ctx, sql, documentName, data)
	if err != nil {
		s.logger.Error("unexpected error when creating document", zap.Error(err))
		return "", err
	}

	if tag.RowsAffected() == 0 {
		// Someone else bootstrapped the row first.
		return "", storage.ErrConflict
	}

	return storage.Version("1"), nil
}
