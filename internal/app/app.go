package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	adminhandler "github.com/yacinedev/mystore-backend/internal/admin/handler"
	adminservice "github.com/yacinedev/mystore-backend/internal/admin/service"
	analyticshandler "github.com/yacinedev/mystore-backend/internal/analytics/handler"
	analyticsservice "github.com/yacinedev/mystore-backend/internal/analytics/service"
	authhandler "github.com/yacinedev/mystore-backend/internal/auth/handler"
	jwtauth "github.com/yacinedev/mystore-backend/internal/auth/jwt"
	"github.com/yacinedev/mystore-backend/internal/auth/password"
	authservice "github.com/yacinedev/mystore-backend/internal/auth/service"
	"github.com/yacinedev/mystore-backend/internal/config"
	"github.com/yacinedev/mystore-backend/internal/documents"
	orderhandler "github.com/yacinedev/mystore-backend/internal/order/handler"
	orderservice "github.com/yacinedev/mystore-backend/internal/order/service"
	producthandler "github.com/yacinedev/mystore-backend/internal/product/handler"
	productservice "github.com/yacinedev/mystore-backend/internal/product/service"
	settingshandler "github.com/yacinedev/mystore-backend/internal/settings/handler"
	settingsservice "github.com/yacinedev/mystore-backend/internal/settings/service"
	"github.com/yacinedev/mystore-backend/internal/storage"
	cachestore "github.com/yacinedev/mystore-backend/internal/storage/cache"
	filestore "github.com/yacinedev/mystore-backend/internal/storage/file"
	githubstore "github.com/yacinedev/mystore-backend/internal/storage/github"
	pgstore "github.com/yacinedev/mystore-backend/internal/storage/postgresql"
	uploadhandler "github.com/yacinedev/mystore-backend/internal/upload/handler"
	uploadservice "github.com/yacinedev/mystore-backend/internal/upload/service"
	userhandler "github.com/yacinedev/mystore-backend/internal/user/handler"
	userservice "github.com/yacinedev/mystore-backend/internal/user/service"
	minioclient "github.com/yacinedev/mystore-backend/pkg/client/minio"
	pgclient "github.com/yacinedev/mystore-backend/pkg/client/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/yacinedev/mystore-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	Router     chi.Router
}

func NewApp(log *zap.Logger, cfg *config.Config) *App {
	store := newStore(log, cfg)

	if cfg.Storage.CacheTTL > 0 {
		store = cachestore.New(store, cfg.Storage.CacheTTL)
	}

	passwordManager := password.New(log)

	documentManager := documents.NewManager(store, passwordManager, cfg.Admin.InitialPassword, log)

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	if cfg.Upload.Backend == config.UploadBackendDisk {
		fileServer := http.StripPrefix(cfg.Upload.StaticURL, http.FileServer(http.Dir(cfg.Upload.Dir)))
		router.Get(cfg.Upload.StaticURL+"/*", fileServer.ServeHTTP)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", HealthHandler(documentManager))

		tokenManager := jwtauth.NewTokenManager(cfg.JWT)

		authMiddleware := jwtauth.NewMiddleware(log, tokenManager)

		authHandler := authhandler.New(
			authservice.NewService(documentManager, tokenManager, passwordManager, log),
			log,
		)
		authHandler.Register(r)

		userHandler := userhandler.New(
			userservice.NewService(documentManager, passwordManager, log),
			authMiddleware,
			log,
		)
		userHandler.Register(r)

		settingsHandler := settingshandler.New(
			settingsservice.NewService(documentManager, log),
			authMiddleware,
			log,
		)
		settingsHandler.Register(r)

		productHandler := producthandler.New(
			productservice.NewService(documentManager, cfg.Upload.PublicBaseURL, cfg.Upload.StaticURL, log),
			authMiddleware,
			log,
		)
		productHandler.Register(r)

		orderHandler := orderhandler.New(
			orderservice.NewService(documentManager, log),
			authMiddleware,
			log,
		)
		orderHandler.Register(r)

		analyticsHandler := analyticshandler.New(
			analyticsservice.NewService(documentManager, log),
			authMiddleware,
			log,
		)
		analyticsHandler.Register(r)

		adminHandler := adminhandler.New(
			adminservice.NewService(documentManager, log),
			authMiddleware,
			log,
		)
		adminHandler.Register(r)

		uploadHandler := uploadhandler.New(
			newUploadService(log, cfg),
			authMiddleware,
			cfg.Upload.MaxSizeMB*1024*1024,
			log,
		)
		uploadHandler.Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		Router:     router,
	}
}

func newStore(log *zap.Logger, cfg *config.Config) storage.Store {
	switch cfg.Storage.Backend {
	case config.StorageBackendGitHub:
		return githubstore.New(cfg.Storage.GitHub, log)
	case config.StorageBackendPostgreSQL:
		pgClient, err := pgclient.NewClient(
			context.TODO(),
			pgclient.Config{
				Username: cfg.Storage.PostgreSQL.Username,
				Password: cfg.Storage.PostgreSQL.Password,
				Host:     cfg.Storage.PostgreSQL.Host,
				Port:     cfg.Storage.PostgreSQL.Port,
				Database: cfg.Storage.PostgreSQL.Database,
			},
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		return pgstore.New(pgClient, log)
	default:
		return filestore.New(cfg.Storage.File.Path, log)
	}
}

func newUploadService(log *zap.Logger, cfg *config.Config) uploadhandler.Service {
	if cfg.Upload.Backend == config.UploadBackendMinio {
		client, err := minioclient.New(minioclient.Config{
			Endpoint:        cfg.Upload.Minio.Endpoint,
			AccessKeyID:     cfg.Upload.Minio.AccessKeyID,
			SecretAccessKey: cfg.Upload.Minio.SecretAccessKey,
			UseSSL:          cfg.Upload.Minio.UseSSL,
		})
		if err != nil {
			log.Fatal(err.Error())
		}
		return uploadservice.NewMinioService(client, cfg.Upload.MinioBucket, cfg.Upload.Minio.PublicURL, log)
	}

	return uploadservice.NewDiskService(cfg.Upload.Dir, cfg.Upload.StaticURL, log)
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// @Tags		other
// @Success	200		{object}	healthResponse
// @Failure	500		{object}	healthResponse
// @Router		/health [get]
func HealthHandler(documents *documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if _, err := documents.View(r.Context()); err != nil {
			resp.Status = "ERROR"
			w.WriteHeader(http.StatusInternalServerError)
		}

		render.JSON(w, r, resp)
	}
}
