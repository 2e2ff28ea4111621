package routes

import (
	"github.com/go-chi/chi/v5"
	"vitrine/internal/config"
	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
	"vitrine/internal/services"
)

func RegisterMediaRoutes(router chi.Router, cfg *config.Config, s3Config *config.S3Config) {
	// No bucket configured means no upload endpoint
	if s3Config == nil || s3Config.Bucket == "" {
		return
	}

	uploader := services.NewMediaUploader(s3Config)
	mediaHandler := handlers.NewMediaHandler(uploader)

	router.Route("/media", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/upload", mediaHandler.Upload)
	})
}
