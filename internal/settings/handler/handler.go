package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"github.com/yacinedev/mystore-backend/internal/settings"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocksettingsservice
type Service interface {
	Get(ctx context.Context) (*document.Settings, error)
	Update(ctx context.Context, patch settings.Patch) (*document.Settings, error)
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
	router.Route("/settings", func(settingsRouter chi.Router) {
		settingsRouter.Get("/", apperror.Middleware(h.getHandler))

		settingsRouter.Group(func(privateRouter chi.Router) {
			privateRouter.Use(h.authMiddleware)

			privateRouter.Put("/", apperror.Middleware(h.updateHandler))
		})
	})
}

// @Tags		settings
// @Success	200		{object}	document.Settings
// @Failure	500		{object}	apperror.AppError
// @Router		/settings [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := h.service.Get(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		settings
// @Param		request	body		settings.Patch	true	"partial settings"
// @Success	200		{object}	document.Settings
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/settings [put]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var patch settings.Patch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		return apperror.ErrDecodeBody
	}

	result, err := h.service.Update(r.Context(), patch)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}
