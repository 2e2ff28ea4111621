// internal/routes/wizard_routes.go
package routes

import (
    "database/sql"

    "github.com/go-chi/chi/v5"
    "vitrine/internal/config"
    "vitrine/internal/handlers"
    "vitrine/internal/middleware"
    "vitrine/internal/repository"
    "vitrine/internal/wizard"
)

func RegisterWizardRoutes(router chi.Router, db *sql.DB, cfg *config.Config, sessions *wizard.Sessions) {
    adRepo := repository.NewAdRepository(db)
    wizardHandler := handlers.NewWizardHandler(sessions, adRepo)

    router.Route("/wizard", func(r chi.Router) {
        r.Use(middleware.JWTAuth(cfg.JWTSecret))

        r.Post("/", wizardHandler.Start)
        r.Get("/", wizardHandler.GetState)
        r.Patch("/", wizardHandler.PatchDraft)
        r.Delete("/", wizardHandler.Discard)
        r.Post("/next", wizardHandler.Next)
        r.Post("/back", wizardHandler.Back)
        r.Post("/submit", wizardHandler.Submit)
    })
}
