package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"vitrine/internal/config"
	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
	"vitrine/internal/repository"
)

func RegisterUserRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	userHandler := handlers.NewUserHandler(repository.NewUserRepository(db))

	router.Route("/users", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/me", userHandler.GetMe)
		r.Put("/me", userHandler.UpdateMe)
	})
}
