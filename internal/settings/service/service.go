package service

import (
	"context"

	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/settings"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocksettingsservice
type Documents interface {
	View(ctx context.Context) (*document.Document, error)
	Update(ctx context.Context, fn func(doc *document.Document) error) (*document.Document, error)
}

type service struct {
	documents Documents
	logger    *zap.Logger
}

func NewService(documents Documents, logger *zap.Logger) *service {
	return &service{
		documents: documents,
		logger:    logger,
	}
}

func (s *service) Get(ctx context.Context) (*document.Settings, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	return &doc.Settings, nil
}

func (s *service) Update(ctx context.Context, patch settings.Patch) (*document.Settings, error) {
	doc, err := s.documents.Update(ctx, func(doc *document.Document) error {
		patch.Apply(&doc.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &doc.Settings, nil
}
