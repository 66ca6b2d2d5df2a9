package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"github.com/yacinedev/mystore-backend/internal/user"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuserservice
type Service interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
	UpdateProfile(ctx context.Context, dto user.UpdateProfileRequest) (*user.Profile, error)
	ChangePassword(ctx context.Context, dto user.ChangePasswordRequest) error
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
	router.Route("/user", func(userRouter chi.Router) {
		userRouter.Use(h.authMiddleware)

		userRouter.Get("/profile", apperror.Middleware(h.getProfileHandler))
		userRouter.Put("/profile", apperror.Middleware(h.updateProfileHandler))
		userRouter.Put("/password", apperror.Middleware(h.changePasswordHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		user
// @Success	200		{object}	user.Profile
// @Failure	401,500	{object}	apperror.AppError
// @Router		/user/profile [get]
func (h *handler) getProfileHandler(w http.ResponseWriter, r *http.Request) error {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, profile)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		user
// @Param		request	body		user.UpdateProfileRequest	true	"request body"
// @Success	200		{object}	user.Profile
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/user/profile [put]
func (h *handler) updateProfileHandler(w http.ResponseWriter, r *http.Request) error {
	var dto user.UpdateProfileRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	profile, err := h.service.UpdateProfile(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, profile)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		user
// @Param		request	body		user.ChangePasswordRequest	true	"request body"
// @Success	200		{object}	user.SuccessResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/user/password [put]
func (h *handler) changePasswordHandler(w http.ResponseWriter, r *http.Request) error {
	var dto user.ChangePasswordRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.ChangePassword(r.Context(), dto); err != nil {
		return err
	}

	render.JSON(w, r, user.SuccessResponse{Success: true})

	return nil
}
