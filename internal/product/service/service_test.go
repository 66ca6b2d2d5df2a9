package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/product"
	mockproductservice "github.com/yacinedev/mystore-backend/internal/product/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	publicBaseURL = "https://store.example.com"
	staticURL     = "/static"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

func docWithProducts() *document.Document {
	doc := document.Default([]byte("hash"))
	doc.Products = []document.Product{
		{ID: 1, Name: "lamp", Price: 49.9, Images: []string{"uploads/lamp.png"}},
		{ID: 2, Name: "rug", Price: 120, Images: []string{"https://cdn.example.com/rug.png"}},
	}
	doc.NextProductID = 3
	return doc
}

func passthroughUpdate(doc *document.Document) func(context.Context, func(*document.Document) error) (*document.Document, error) {
	return func(ctx context.Context, fn func(*document.Document) error) (*document.Document, error) {
		if err := fn(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
}

func TestListRewritesRelativeImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(docWithProducts(), nil)

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	products, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, publicBaseURL+staticURL+"/uploads/lamp.png", products[0].Images[0])
	assert.Equal(t, "https://cdn.example.com/rug.png", products[1].Images[0], "absolute URLs pass through untouched")
}

func TestListKeepsUploadedImagesUnderStaticMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := document.Default([]byte("hash"))
	doc.Products = []document.Product{
		{ID: 1, Name: "lamp", Price: 49.9, Images: []string{staticURL + "/abc.png"}},
	}

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(doc, nil)

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	products, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, publicBaseURL+staticURL+"/abc.png", products[0].Images[0],
		"paths returned by the upload service must not gain a second static prefix")
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(docWithProducts(), nil).Times(2)

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	found, err := service.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "rug", found.Name)

	_, err = service.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateAssignsSequentialID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := docWithProducts()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	created, err := service.Create(context.Background(), product.CreateRequest{
		Name:     "vase",
		Price:    floatPtr(15),
		Quantity: intPtr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.True(t, created.Active, "products are active unless the request says otherwise")
	assert.True(t, created.DeliveryAvailable)
	assert.NotNil(t, created.Images)
	assert.Equal(t, 4, doc.NextProductID)
	assert.Len(t, doc.Products, 3)
}

func TestCreateHonorsExplicitFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := docWithProducts()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	created, err := service.Create(context.Background(), product.CreateRequest{
		Name:              "hidden",
		Price:             floatPtr(5),
		Quantity:          intPtr(0),
		Active:            boolPtr(false),
		DeliveryAvailable: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, created.Active)
	assert.False(t, created.DeliveryAvailable)
}

func TestUpdateMergesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := docWithProducts()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	updated, err := service.Update(context.Background(), 1, product.UpdateRequest{
		Price:    floatPtr(59.9),
		Category: strPtr("lighting"),
	})

	require.NoError(t, err)
	assert.Equal(t, "lamp", updated.Name, "absent fields stay untouched")
	assert.Equal(t, 59.9, updated.Price)
	assert.Equal(t, "lighting", updated.Category)
	assert.Equal(t, []string{"uploads/lamp.png"}, updated.Images, "empty image list keeps existing images")
}

func TestUpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(docWithProducts()))

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	_, err := service.Update(context.Background(), 99, product.UpdateRequest{Price: floatPtr(1)})

	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := docWithProducts()

	mockDocuments := mockproductservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

	service := NewService(mockDocuments, publicBaseURL, staticURL, zap.NewNop())

	err := service.Delete(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, 2, doc.Products[0].ID)
	assert.Equal(t, 3, doc.NextProductID, "deleting never reuses ids")
}
