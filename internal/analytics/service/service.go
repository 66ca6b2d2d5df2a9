package service

import (
	"context"

	"github.com/yacinedev/mystore-backend/internal/analytics"
	"github.com/yacinedev/mystore-backend/internal/document"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockanalyticsservice
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

// RecordVisit bumps the visitor counter. This is the highest-frequency
// mutation in the system; callers treat failures as non-critical.
func (s *service) RecordVisit(ctx context.Context) error {
	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		doc.Analytics.Visitors++
		return nil
	})

	return err
}

func (s *service) Get(ctx context.Context) (*document.Analytics, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	return &doc.Analytics, nil
}

func (s *service) DashboardStats(ctx context.Context) (*analytics.DashboardStats, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, o := range doc.Orders {
		if o.Status == document.OrderStatusPending {
			pending++
		}
	}

	return &analytics.DashboardStats{
		Visitors:      doc.Analytics.Visitors,
		OrdersCount:   doc.Analytics.OrdersCount,
		Revenue:       doc.Analytics.Revenue,
		ProductsTotal: len(doc.Products),
		OrdersTotal:   len(doc.Orders),
		OrdersPending: pending,
		Monthly:       doc.Analytics.Monthly,
	}, nil
}
