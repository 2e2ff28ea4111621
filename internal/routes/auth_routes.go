package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"vitrine/internal/config"
	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
)

func RegisterAuthRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Post("/change-password", authHandler.ChangePassword)
		})
	})
}
