package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yacinedev/mystore-backend/internal/admin"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockadminservice
type Service interface {
	ResetData(ctx context.Context) (*admin.ResetResponse, error)
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
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/reset-data", apperror.Middleware(h.resetDataHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Success	200	{object}	admin.ResetResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/reset-data [post]
func (h *handler) resetDataHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.ResetData(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}
