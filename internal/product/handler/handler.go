package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"github.com/yacinedev/mystore-backend/internal/product"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproducthandler
type Service interface {
	List(ctx context.Context) ([]document.Product, error)
	Get(ctx context.Context, id int) (*document.Product, error)
	Create(ctx context.Context, dto product.CreateRequest) (*document.Product, error)
	Update(ctx context.Context, id int, dto product.UpdateRequest) (*document.Product, error)
	Delete(ctx context.Context, id int) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/products", func(productsRouter chi.Router) {
		productsRouter.Get("/", apperror.Middleware(h.listHandler))
		productsRouter.Get("/{id}", apperror.Middleware(h.getHandler))

		productsRouter.Group(func(privateRouter chi.Router) {
			privateRouter.Use(h.authMiddleware)

			privateRouter.Post("/", apperror.Middleware(h.createHandler))
			privateRouter.Put("/{id}", apperror.Middleware(h.updateHandler))
			privateRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
		})
	})
}

func productID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewAppError("product id must be an integer")
	}

	return id, nil
}

// @Tags		products
// @Success	200	{array}		document.Product
// @Failure	500	{object}	apperror.AppError
// @Router		/products [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	products, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, products)

	return nil
}

// @Tags		products
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	document.Product
// @Failure	404,500	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		request	body		product.CreateRequest	true	"request body"
// @Success	200		{object}	document.Product
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/products [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto product.CreateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	result, err := h.service.Create(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id		path		int						true	"product id"
// @Param		request	body		product.UpdateRequest	true	"request body"
// @Success	200		{object}	document.Product
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [put]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	var dto product.UpdateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	result, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id	path		int	true	"product id"
// @Success	200	{object}	product.SuccessResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	render.JSON(w, r, product.SuccessResponse{Success: true})

	return nil
}
