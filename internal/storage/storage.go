package storage

import (
	"context"
	"errors"

	"github.com/yacinedev/mystore-backend/internal/document"
)

var (
	// ErrNotFound means the document has never been written to this store.
	ErrNotFound = errors.New("document not found")
	// ErrConflict means the document changed underneath a conditional save.
	ErrConflict = errors.New("document version conflict")
)

// Version is an opaque token identifying the persisted revision of the
// document. The empty version means "no prior revision known"; a save with an
// empty version creates the document.
type Version string

// Store reads and writes the whole document. Implementations do not retry and
// do not serialize callers; that is the documents manager's job.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock.go -package=mockstorage
type Store interface {
	Load(ctx context.Context) (*document.Document, Version, error)
	Save(ctx context.Context, doc *document.Document, version Version) (Version, error)
}
