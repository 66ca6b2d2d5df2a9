package main

import (
	"github.com/yacinedev/mystore-backend/internal/app"
	"github.com/yacinedev/mystore-backend/internal/config"
	"go.uber.org/zap"
)

// @title						MyStore Backend API
// @version					1.0
// @description				REST backend for the storefront and its admin dashboard.
// @BasePath					/api
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "prod" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	defer log.Sync()

	application := app.NewApp(log, cfg)

	log.Info("starting server",
		zap.String("addr", cfg.HTTPServer.Address),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	application.MustRun()
}
