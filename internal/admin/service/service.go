package service

import (
	"context"

	"github.com/yacinedev/mystore-backend/internal/admin"
	"github.com/yacinedev/mystore-backend/internal/document"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockadminservice
type Documents interface {
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

// ResetData restores the default document. The current admin credentials
// survive the reset; everything else is wiped.
func (s *service) ResetData(ctx context.Context) (*admin.ResetResponse, error) {
	summary := &admin.ResetResponse{Success: true}

	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		summary.ProductsRemoved = len(doc.Products)
		summary.OrdersRemoved = len(doc.Orders)

		fresh := document.Default(doc.User.PasswordHash)
		fresh.User.PasswordChangedAt = doc.User.PasswordChangedAt

		*doc = *fresh

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Warn("store data has been reset",
		zap.Int("products_removed", summary.ProductsRemoved),
		zap.Int("orders_removed", summary.OrdersRemoved),
	)

	return summary, nil
}
