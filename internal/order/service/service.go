package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/order"
	"go.uber.org/zap"
)

var ErrOrderNotFound = apperror.ErrNotFound

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockorderservice
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

func (s *service) List(ctx context.Context) ([]document.Order, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Orders, nil
}

func (s *service) Get(ctx context.Context, id string) (*document.Order, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	idx := doc.FindOrder(id)
	if idx == -1 {
		return nil, ErrOrderNotFound
	}

	return &doc.Orders[idx], nil
}

// Create places a public order. The total is computed once here and never
// recomputed afterwards; line items are immutable. Only completed orders are
// counted in analytics, so creation leaves the counters untouched.
func (s *service) Create(ctx context.Context, dto order.CreateRequest) (*document.Order, error) {
	items := make([]document.OrderItem, len(dto.Items))
	var total float64
	for i, item := range dto.Items {
		items[i] = document.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     *item.Price,
			Quantity:  *item.Quantity,
		}
		total += *item.Price * float64(*item.Quantity)
	}

	deliveryMethod := dto.DeliveryMethod
	if deliveryMethod == "" {
		deliveryMethod = document.DeliveryMethodDelivery
	}

	now := time.Now().UTC()

	created := document.Order{
		ID:             "ORD-" + uuid.NewString(),
		CustomerName:   dto.CustomerName,
		Phone:          dto.Phone,
		Address:        dto.Address,
		Note:           dto.Note,
		Items:          items,
		DeliveryMethod: deliveryMethod,
		Total:          total,
		Status:         document.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		doc.Orders = append(doc.Orders, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("id", created.ID),
		zap.Float64("total", created.Total),
	)

	return &created, nil
}

// UpdateStatus transitions the order and applies the symmetric analytics
// adjustment: entering completed adds the order once, leaving completed
// subtracts it once, moves between non-counted states change nothing.
func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*document.Order, error) {
	var updated document.Order

	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		idx := doc.FindOrder(id)
		if idx == -1 {
			return ErrOrderNotFound
		}

		o := &doc.Orders[idx]
		now := time.Now().UTC()

		wasCounted := o.Status == document.OrderStatusCompleted
		willBeCounted := status == document.OrderStatusCompleted

		switch {
		case !wasCounted && willBeCounted:
			o.CompletedAt = &now
			doc.Analytics.CountOrder(o.Total, 1, now)
		case wasCounted && !willBeCounted:
			completedAt := now
			if o.CompletedAt != nil {
				completedAt = *o.CompletedAt
			}
			doc.Analytics.CountOrder(o.Total, -1, completedAt)
			o.CompletedAt = nil
		}

		o.Status = status
		o.UpdatedAt = now

		updated = *o

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated", zap.String("id", id), zap.String("status", status))

	return &updated, nil
}

// Delete removes the order; a counted order is subtracted from analytics.
func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		idx := doc.FindOrder(id)
		if idx == -1 {
			return ErrOrderNotFound
		}

		o := doc.Orders[idx]
		if o.Status == document.OrderStatusCompleted {
			completedAt := time.Now().UTC()
			if o.CompletedAt != nil {
				completedAt = *o.CompletedAt
			}
			doc.Analytics.CountOrder(o.Total, -1, completedAt)
		}

		doc.Orders = append(doc.Orders[:idx], doc.Orders[idx+1:]...)

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.String("id", id))

	return nil
}
