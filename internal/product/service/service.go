package service

import (
	"context"
	"strings"
	"time"

	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/product"
	"go.uber.org/zap"
)

var ErrProductNotFound = apperror.ErrNotFound

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductservice
type Documents interface {
	View(ctx context.Context) (*document.Document, error)
	Update(ctx context.Context, fn func(doc *document.Document) error) (*document.Document, error)
}

type service struct {
	documents Documents
	// publicBaseURL is the origin storefront clients load images from;
	// staticURL is the mount uploads are served under.
	publicBaseURL string
	staticURL     string
	logger        *zap.Logger
}

func NewService(documents Documents, publicBaseURL string, staticURL string, logger *zap.Logger) *service {
	return &service{
		documents:     documents,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		staticURL:     strings.TrimSuffix(staticURL, "/"),
		logger:        logger,
	}
}

// imageURL rewrites a stored image path for list/get responses. Uploads come
// back from the upload service already rooted at the static mount, so rooted
// paths only gain the public origin; bare filenames are mounted first.
// Absolute URLs pass through untouched.
func (s *service) imageURL(img string) string {
	if img == "" || strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
		return img
	}

	path := img
	if !strings.HasPrefix(path, "/") {
		path = s.staticURL + "/" + path
	}

	return s.publicBaseURL + path
}

func (s *service) absoluteImages(p document.Product) document.Product {
	if len(p.Images) == 0 {
		return p
	}

	images := make([]string, len(p.Images))
	for i, img := range p.Images {
		images[i] = s.imageURL(img)
	}
	p.Images = images

	return p
}

func (s *service) List(ctx context.Context) ([]document.Product, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]document.Product, len(doc.Products))
	for i, p := range doc.Products {
		products[i] = s.absoluteImages(p)
	}

	return products, nil
}

func (s *service) Get(ctx context.Context, id int) (*document.Product, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	idx := doc.FindProduct(id)
	if idx == -1 {
		return nil, ErrProductNotFound
	}

	p := s.absoluteImages(doc.Products[idx])

	return &p, nil
}

func (s *service) Create(ctx context.Context, dto product.CreateRequest) (*document.Product, error) {
	var created document.Product

	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		now := time.Now().UTC()

		created = document.Product{
			ID:                doc.NextProductID,
			Name:              dto.Name,
			Description:       dto.Description,
			Price:             *dto.Price,
			Quantity:          *dto.Quantity,
			Category:          dto.Category,
			Active:            true,
			DeliveryAvailable: true,
			Images:            dto.Images,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if created.Images == nil {
			created.Images = []string{}
		}
		if dto.Active != nil {
			created.Active = *dto.Active
		}
		if dto.DeliveryAvailable != nil {
			created.DeliveryAvailable = *dto.DeliveryAvailable
		}

		doc.NextProductID++
		doc.Products = append(doc.Products, created)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.Int("id", created.ID), zap.String("name", created.Name))

	return &created, nil
}

func (s *service) Update(ctx context.Context, id int, dto product.UpdateRequest) (*document.Product, error) {
	var updated document.Product

	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		idx := doc.FindProduct(id)
		if idx == -1 {
			return ErrProductNotFound
		}

		p := &doc.Products[idx]

		if dto.Name != nil {
			p.Name = *dto.Name
		}
		if dto.Description != nil {
			p.Description = *dto.Description
		}
		if dto.Price != nil {
			p.Price = *dto.Price
		}
		if dto.Quantity != nil {
			p.Quantity = *dto.Quantity
		}
		if dto.Category != nil {
			p.Category = *dto.Category
		}
		if dto.Active != nil {
			p.Active = *dto.Active
		}
		if dto.DeliveryAvailable != nil {
			p.DeliveryAvailable = *dto.DeliveryAvailable
		}
		if len(dto.Images) > 0 {
			p.Images = dto.Images
		}
		p.UpdatedAt = time.Now().UTC()

		updated = *p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	_, err := s.documents.Update(ctx, func(doc *document.Document) error {
		idx := doc.FindProduct(id)
		if idx == -1 {
			return ErrProductNotFound
		}

		doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.Int("id", id))

	return nil
}
