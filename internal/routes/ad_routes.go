// internal/routes/ad_routes.go
package routes

import (
    "database/sql"

    "github.com/go-chi/chi/v5"
    "vitrine/internal/config"
    "vitrine/internal/handlers"
    "vitrine/internal/middleware"
    "vitrine/internal/repository"
)

func RegisterAdRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
    adRepo := repository.NewAdRepository(db)
    adHandler := handlers.NewAdHandler(adRepo)

    router.Route("/ads", func(r chi.Router) {
        // public browsing
        r.Get("/", adHandler.ListAds)

        r.Group(func(r chi.Router) {
            r.Use(middleware.JWTAuth(cfg.JWTSecret))
            r.Get("/mine", adHandler.ListMyAds)
        })

        r.Route("/{id}", func(r chi.Router) {
            r.Get("/", adHandler.GetAd)

            r.Group(func(r chi.Router) {
                r.Use(middleware.JWTAuth(cfg.JWTSecret))
                r.Delete("/", adHandler.DeleteAd)
                r.Post("/pause", adHandler.PauseAd)
            })
        })
    })
}
