package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/auth"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockauthhandler
type Service interface {
	Login(ctx context.Context, dto auth.LoginRequest) (*auth.LoginResponse, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Post("/login", apperror.Middleware(h.loginHandler))
}

// @Tags		auth
// @Param		request	body		auth.LoginRequest	true	"request body"
// @Success	200		{object}	auth.LoginResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, resp)

	return nil
}
