package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"github.com/yacinedev/mystore-backend/internal/order"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockorderhandler
type Service interface {
	List(ctx context.Context) ([]document.Order, error)
	Get(ctx context.Context, id string) (*document.Order, error)
	Create(ctx context.Context, dto order.CreateRequest) (*document.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*document.Order, error)
	Delete(ctx context.Context, id string) error
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
	router.Route("/orders", func(ordersRouter chi.Router) {
		// Placing an order is the one public mutation: storefront customers
		// are not authenticated.
		ordersRouter.Post("/", apperror.Middleware(h.createHandler))

		ordersRouter.Group(func(privateRouter chi.Router) {
			privateRouter.Use(h.authMiddleware)

			privateRouter.Get("/", apperror.Middleware(h.listHandler))
			privateRouter.Get("/{id}", apperror.Middleware(h.getHandler))
			privateRouter.Put("/{id}/status", apperror.Middleware(h.updateStatusHandler))
			privateRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
		})
	})
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Success	200	{array}		document.Order
// @Failure	401,500	{object}	apperror.AppError
// @Router		/orders [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	orders, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, orders)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id	path		string	true	"order id"
// @Success	200	{object}	document.Order
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Tags		orders
// @Param		request	body		order.CreateRequest	true	"request body"
// @Success	200		{object}	order.CreateResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/orders [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto order.CreateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, order.CreateResponse{Success: true, OrderID: created.ID, Order: created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id		path		string						true	"order id"
// @Param		request	body		order.UpdateStatusRequest	true	"request body"
// @Success	200		{object}	document.Order
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/orders/{id}/status [put]
func (h *handler) updateStatusHandler(w http.ResponseWriter, r *http.Request) error {
	var dto order.UpdateStatusRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	result, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), dto.Status)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id	path		string	true	"order id"
// @Success	200	{object}	order.SuccessResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, order.SuccessResponse{Success: true})

	return nil
}
