package documents

import (
	"context"
	"errors"
	"sync"

	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/storage"
	"go.uber.org/zap"
)

// maxSaveAttempts bounds the reload-and-reapply loop when a conditional save
// hits a version conflict (another process wrote the backing store).
const maxSaveAttempts = 3

// Bootstrapper produces the password hash for the very first document.
//
//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mockdocuments
type Bootstrapper interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
}

// Manager owns every load-mutate-save cycle against the store. A per-process
// mutex serializes writers, which closes the lost-update race between two
// concurrent requests that both loaded the document before either saved.
// Cross-process races are caught by the store's version token and retried.
type Manager struct {
	store           storage.Store
	bootstrapper    Bootstrapper
	initialPassword string
	logger          *zap.Logger

	mu sync.Mutex
}

func NewManager(
	store storage.Store,
	bootstrapper Bootstrapper,
	initialPassword string,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		store:           store,
		bootstrapper:    bootstrapper,
		initialPassword: initialPassword,
		logger:          logger,
	}
}

// load fetches and normalizes the document, bootstrapping a default one when
// the store has never been written.
func (m *Manager) load(ctx context.Context) (*document.Document, storage.Version, error) {
	doc, version, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			bootstrapped, err := m.bootstrap()
			if err != nil {
				return nil, "", err
			}
			return bootstrapped, "", nil
		}

		return nil, "", err
	}

	document.Normalize(doc)

	return doc, version, nil
}

func (m *Manager) bootstrap() (*document.Document, error) {
	hash, err := m.bootstrapper.GenerateHashFromPassword([]byte(m.initialPassword))
	if err != nil {
		m.logger.Error("unexpected error when hashing initial password", zap.Error(err))
		return nil, err
	}

	m.logger.Info("bootstrapping default store document")

	return document.Default(hash), nil
}

// View returns the current normalized document for read-only handlers.
func (m *Manager) View(ctx context.Context) (*document.Document, error) {
	doc, _, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Update runs fn inside a serialized load-mutate-save cycle and returns the
// saved document. fn must be safe to re-apply: on a version conflict the
// document is reloaded and fn runs again against the fresh copy, up to
// maxSaveAttempts times.
func (m *Manager) Update(ctx context.Context, fn func(doc *document.Document) error) (*document.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for attempt := 1; ; attempt++ {
		doc, version, err := m.load(ctx)
		if err != nil {
			return nil, err
		}

		if err := fn(doc); err != nil {
			return nil, err
		}

		if _, err := m.store.Save(ctx, doc, version); err != nil {
			if errors.Is(err, storage.ErrConflict) && attempt < maxSaveAttempts {
				m.logger.Warn("version conflict when saving document, retrying",
					zap.Int("attempt", attempt),
				)
				continue
			}

			if errors.Is(err, storage.ErrConflict) {
				return nil, apperror.ErrConflict
			}

			return nil, err
		}

		return doc, nil
	}
}
