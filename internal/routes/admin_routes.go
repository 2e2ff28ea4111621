// internal/routes/admin_routes.go
package routes

import (
    "database/sql"

    "github.com/go-chi/chi/v5"
    "vitrine/internal/config"
    "vitrine/internal/handlers"
    "vitrine/internal/middleware"
    "vitrine/internal/repository"
    "vitrine/internal/services"
)

func RegisterAdminRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
    adRepo := repository.NewAdRepository(db)
    userRepo := repository.NewUserRepository(db)

    var mailer services.Mailer
    if cfg.SMTPHost != "" {
        mailer = &services.SMTPMailer{
            Host:   cfg.SMTPHost,
            Port:   cfg.SMTPPort,
            User:   cfg.SMTPUser,
            Pass:   cfg.SMTPPassword,
            From:   cfg.SMTPFrom,
            UseTLS: cfg.SMTPUseTLS,
        }
    }

    moderationHandler := handlers.NewModerationHandler(adRepo, userRepo, mailer)
    userHandler := handlers.NewUserHandler(userRepo)

    router.Route("/admin", func(r chi.Router) {
        r.Use(middleware.JWTAuth(cfg.JWTSecret))
        r.Use(middleware.RequireAdmin)

        r.Get("/ads", moderationHandler.ListPending)
        r.Post("/ads/{id}/approve", moderationHandler.Approve)
        r.Post("/ads/{id}/reject", moderationHandler.Reject)

        r.Get("/users", userHandler.ListUsers)
        r.Put("/users/{id}/verified", userHandler.SetVerified)
    })
}
