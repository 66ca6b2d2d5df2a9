package cache

import (
	"context"
	"sync"
	"time"

	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/storage"
)

// store decorates another storage.Store with a short-lived read cache for
// read-heavy endpoints. Every successful Save refreshes the cache
// synchronously, so the cache can serve stale reads for at most ttl but never
// masks a write made through this process.
type store struct {
	inner storage.Store
	ttl   time.Duration

	mu        sync.Mutex
	cached    *document.Document
	version   storage.Version
	expiresAt time.Time
}

func New(inner storage.Store, ttl time.Duration) *store {
	return &store{
		inner: inner,
		ttl:   ttl,
	}
}

func (s *store) Load(ctx context.Context) (*document.Document, storage.Version, error) {
	s.mu.Lock()
	if s.cached != nil && time.Now().Before(s.expiresAt) {
		doc := s.cached.Clone()
		version := s.version
		s.mu.Unlock()
		return doc, version, nil
	}
	s.mu.Unlock()

	doc, version, err := s.inner.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	s.put(doc, version)

	return doc, version, nil
}

func (s *store) Save(ctx context.Context, doc *document.Document, version storage.Version) (storage.Version, error) {
	newVersion, err := s.inner.Save(ctx, doc, version)
	if err != nil {
		return "", err
	}

	s.put(doc, newVersion)

	return newVersion, nil
}

func (s *store) put(doc *document.Document, version storage.Version) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = doc.Clone()
	s.version = version
	s.expiresAt = time.Now().Add(s.ttl)
}
