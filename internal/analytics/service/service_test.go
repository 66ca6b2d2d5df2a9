package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mockanalyticsservice "github.com/yacinedev/mystore-backend/internal/analytics/service/mocks"
	"github.com/yacinedev/mystore-backend/internal/document"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRecordVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := document.Default([]byte("hash"))
	doc.Analytics.Visitors = 41

	mockDocuments := mockanalyticsservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(*document.Document) error) (*document.Document, error) {
			if err := fn(doc); err != nil {
				return nil, err
			}
			return doc, nil
		},
	)

	service := NewService(mockDocuments, zap.NewNop())

	require.NoError(t, service.RecordVisit(context.Background()))
	assert.Equal(t, 42, doc.Analytics.Visitors)
}

func TestDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := document.Default([]byte("hash"))
	doc.Products = []document.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	doc.Orders = []document.Order{
		{ID: "ORD-1", Status: document.OrderStatusPending},
		{ID: "ORD-2", Status: document.OrderStatusCompleted},
		{ID: "ORD-3", Status: document.OrderStatusPending},
		{ID: "ORD-4", Status: document.OrderStatusCancelled},
	}
	doc.Analytics = document.Analytics{
		Visitors:    100,
		OrdersCount: 1,
		Revenue:     250,
		Monthly:     []document.MonthlyStat{{Month: "2025-08", Orders: 1, Revenue: 250}},
	}

	mockDocuments := mockanalyticsservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(doc, nil)

	service := NewService(mockDocuments, zap.NewNop())

	stats, err := service.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100, stats.Visitors)
	assert.Equal(t, 1, stats.OrdersCount)
	assert.Equal(t, 250.0, stats.Revenue)
	assert.Equal(t, 3, stats.ProductsTotal)
	assert.Equal(t, 4, stats.OrdersTotal)
	assert.Equal(t, 2, stats.OrdersPending)
	assert.Len(t, stats.Monthly, 1)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := document.Default([]byte("hash"))
	doc.Analytics.Visitors = 9

	mockDocuments := mockanalyticsservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(doc, nil)

	service := NewService(mockDocuments, zap.NewNop())

	result, err := service.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 9, result.Visitors)
}
