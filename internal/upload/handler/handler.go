package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/handlers"
	"github.com/yacinedev/mystore-backend/internal/upload"
	"go.uber.org/zap"
)

var (
	ErrNotAnImage = apperror.NewAppError("only image uploads are allowed")
	ErrTooLarge   = apperror.NewAppError("image exceeds the maximum allowed size")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuploadservice
type Service interface {
	StoreImage(ctx context.Context, reader io.Reader, extension string) (string, error)
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	maxSizeBytes   int64
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	maxSizeBytes int64,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		maxSizeBytes:   maxSizeBytes,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authMiddleware)

		privateRouter.Post("/upload", apperror.Middleware(h.uploadHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		upload
// @Accept		mpfd
// @Param		image	formData	file	true	"image file"
// @Success	200	{object}	upload.Response
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/upload [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		return apperror.NewAppError("failed to retrieve image: " + err.Error())
	}
	defer file.Close()

	if header.Size > h.maxSizeBytes {
		return ErrTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))

	imageURL, err := h.service.StoreImage(r.Context(), file, extension)
	if err != nil {
		return err
	}

	h.logger.Info("image uploaded",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
		zap.String("url", imageURL),
	)

	render.JSON(w, r, upload.Response{ImageURL: imageURL})

	return nil
}
