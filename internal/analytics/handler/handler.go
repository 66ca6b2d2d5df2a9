package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yacinedev/mystore-backend/internal/analytics"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockanalyticsservice
type Service interface {
	RecordVisit(ctx context.Context) error
	Get(ctx context.Context) (*document.Analytics, error)
	DashboardStats(ctx context.Context) (*analytics.DashboardStats, error)
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
	router.Post("/analytics/visitor", apperror.Middleware(h.recordVisitHandler))

	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Get("/analytics", apperror.Middleware(h.getHandler))
		privateRouter.Get("/dashboard/stats", apperror.Middleware(h.dashboardStatsHandler))
	})
}

// @Tags		analytics
// @Success	200	{object}	analytics.SuccessResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/analytics/visitor [post]
func (h *handler) recordVisitHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.RecordVisit(r.Context()); err != nil {
		return err
	}

	render.JSON(w, r, analytics.SuccessResponse{Success: true})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		analytics
// @Success	200	{object}	document.Analytics
// @Failure	401,500	{object}	apperror.AppError
// @Router		/analytics [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.Get(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		analytics
// @Success	200	{object}	analytics.DashboardStats
// @Failure	401,500	{object}	apperror.AppError
// @Router		/dashboard/stats [get]
func (h *handler) dashboardStatsHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.DashboardStats(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}
